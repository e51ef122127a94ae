package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArbeitnowFiltersByCompany(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/job-board-api", r.URL.Path)
		assert.Equal(t, "Acme", r.URL.Query().Get("search"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{
					"title": "DevOps Engineer",
					"company_name": "Acme GmbH",
					"location": "Munich",
					"url": "https://arbeitnow.example/jobs/1",
					"description": "<p>Run the platform.</p>",
					"job_types": ["full-time"],
					"created_at": 1756166400
				},
				{
					"title": "Accountant",
					"company_name": "Unrelated AG",
					"location": "Hamburg",
					"url": "https://arbeitnow.example/jobs/2"
				}
			]
		}`))
	}))
	defer server.Close()

	p := &Arbeitnow{BaseURL: server.URL}
	result := p.Fetch(context.Background(), "Acme")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "DevOps Engineer", job.Title)
	assert.Equal(t, "Acme GmbH", job.Company)
	assert.Equal(t, "full-time", job.JobType)
	assert.Equal(t, "Run the platform.", job.Description)
	assert.Equal(t, "Arbeitnow", job.ATSSource)
}

func TestJobicyFiltersByCompany(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v2/remote-jobs", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"jobs": [
				{
					"jobTitle": "Remote QA Engineer",
					"companyName": "Acme",
					"jobGeo": "USA",
					"url": "https://jobicy.example/jobs/1",
					"jobType": ["full-time", "remote"],
					"jobExcerpt": "Test things.",
					"annualSalaryMin": 90000,
					"annualSalaryMax": 120000,
					"salaryCurrency": "USD"
				},
				{
					"jobTitle": "Copywriter",
					"companyName": "Someone Else",
					"url": "https://jobicy.example/jobs/2"
				}
			]
		}`))
	}))
	defer server.Close()

	p := &Jobicy{BaseURL: server.URL}
	result := p.Fetch(context.Background(), "Acme")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "Remote QA Engineer", job.Title)
	assert.Equal(t, "full-time, remote", job.JobType)
	assert.Equal(t, "90000 - 120000 USD", job.Salary)
	assert.Equal(t, "Jobicy", job.ATSSource)
}

func TestJobicyTypeFolding(t *testing.T) {
	assert.Equal(t, "full-time", jobicyType("full-time"))
	assert.Equal(t, "a, b", jobicyType([]any{"a", "b"}))
	assert.Equal(t, "", jobicyType(nil))
	assert.Equal(t, "", jobicyType(42))
}
