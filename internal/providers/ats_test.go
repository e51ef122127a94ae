package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreenhouseProbesIdentifierVariants(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/v1/boards/acme/jobs" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"jobs": [{
				"title": "Platform Engineer",
				"absolute_url": "https://boards.greenhouse.io/acme/jobs/1",
				"updated_at": "2026-08-30T00:00:00Z",
				"content": "Salary range: $140,000 - $180,000 per year.",
				"location": {"name": "Remote - US"},
				"metadata": [{"name": "Employment Type", "value": "Full-time"}]
			}]
		}`))
	}))
	defer server.Close()

	p := &Greenhouse{BaseURL: server.URL}
	result := p.Fetch(context.Background(), "Acme Inc")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	// The suffix-stripped variant is what finally answered.
	assert.Contains(t, paths, "/v1/boards/acme/jobs")
	assert.Greater(t, len(paths), 1)

	job := result.Jobs[0]
	assert.Equal(t, "Platform Engineer", job.Title)
	assert.Equal(t, "Remote - US", job.Location)
	assert.Contains(t, job.Salary, "140,000")
	assert.Equal(t, "Full-time", job.JobType)
	assert.Equal(t, "Greenhouse", job.ATSSource)
}

func TestGreenhouseNoBoardFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	p := &Greenhouse{BaseURL: server.URL}
	result := p.Fetch(context.Background(), "Acme")
	assert.True(t, result.Success)
	assert.Empty(t, result.Jobs)
	assert.NoError(t, result.Err)
}

func TestLeverFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/postings/acme" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"text": "Data Scientist",
			"hostedUrl": "https://jobs.lever.co/acme/1",
			"createdAt": 1756252800000,
			"categories": {"location": "New York, NY", "commitment": "Full-time"},
			"salaryDescription": "$150k - $190k",
			"descriptionPlain": "Work on models."
		}]`))
	}))
	defer server.Close()

	p := &Lever{BaseURL: server.URL}
	result := p.Fetch(context.Background(), "Acme")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "Data Scientist", job.Title)
	assert.Equal(t, "New York, NY", job.Location)
	assert.Equal(t, "https://jobs.lever.co/acme/1", job.SourceURL)
	assert.Equal(t, "$150k - $190k", job.Salary)
	assert.NotEmpty(t, job.DatePosted)
	assert.Equal(t, "Lever", job.ATSSource)
}

func TestWorkableFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/acme/spi/v3/jobs" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"name": "Acme",
			"jobs": [{
				"title": "Support Engineer",
				"url": "https://apply.workable.com/acme/j/1",
				"published_on": "2026-08-25",
				"location": {"city": "Berlin", "country": "Germany"},
				"type": "full"
			}]
		}`))
	}))
	defer server.Close()

	p := &Workable{BaseURLPattern: server.URL + "/%s"}
	result := p.Fetch(context.Background(), "Acme")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "Support Engineer", job.Title)
	assert.Equal(t, "Berlin, Germany", job.Location)
	assert.Equal(t, "Workable", job.ATSSource)
}

func TestAshbyFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/posting-api/job-board/acme" {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "true", r.URL.Query().Get("includeCompensation"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"jobs": [{
				"title": "Product Designer",
				"location": "San Francisco",
				"jobUrl": "https://jobs.ashbyhq.com/acme/1",
				"employmentType": "FullTime",
				"publishedAt": "2026-08-28T10:00:00Z",
				"compensationTierSummary": "$130K - $170K"
			}]
		}`))
	}))
	defer server.Close()

	p := &Ashby{BaseURL: server.URL}
	result := p.Fetch(context.Background(), "Acme")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "Product Designer", job.Title)
	assert.Equal(t, "$130K - $170K", job.Salary)
	assert.Equal(t, "Ashby", job.ATSSource)
}
