package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareerPageKnownCompany(t *testing.T) {
	p := &CareerPage{}
	result := p.Fetch(context.Background(), "Netflix")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "Various Open Positions", job.Title)
	assert.Equal(t, "Multiple", job.Count)
	assert.Equal(t, "https://jobs.netflix.com", job.SourceURL)
	assert.Equal(t, "Company Career Page", job.ATSSource)
}

func TestCareerPageStructuredData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head>
			<script type="application/ld+json">
			{
				"@type": "JobPosting",
				"title": "Staff Engineer",
				"datePosted": "2026-08-20",
				"employmentType": "FULL_TIME",
				"url": "https://acme.example/jobs/1",
				"jobLocation": {"address": {"addressLocality": "Denver", "addressRegion": "CO"}}
			}
			</script>
		</head><body>Careers</body></html>`))
	}))
	defer server.Close()

	p := &CareerPage{
		GuessURLs: func(string) []string { return []string{server.URL} },
	}
	result := p.Fetch(context.Background(), "Acme Widgets")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "Staff Engineer", job.Title)
	assert.Equal(t, "Denver, CO", job.Location)
	assert.Equal(t, "https://acme.example/jobs/1", job.SourceURL)
}

func TestCareerPageWithoutStructuredData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>We are hiring! Email us.</body></html>`))
	}))
	defer server.Close()

	p := &CareerPage{
		GuessURLs: func(string) []string { return []string{server.URL} },
	}
	result := p.Fetch(context.Background(), "Acme Widgets")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	job := result.Jobs[0]
	assert.Equal(t, "Check Career Page", job.Title)
	assert.Equal(t, "Unknown", job.Count)
	assert.Equal(t, server.URL, job.SourceURL)
}

func TestCareerPageNothingReachable(t *testing.T) {
	p := &CareerPage{
		GuessURLs: func(string) []string { return []string{"http://127.0.0.1:1/nope"} },
	}
	result := p.Fetch(context.Background(), "Acme Widgets")
	assert.True(t, result.Success)
	assert.Empty(t, result.Jobs)
}

func TestGuessCareerURLs(t *testing.T) {
	urls := GuessCareerURLs("Acme")
	require.NotEmpty(t, urls)
	assert.Contains(t, urls, "https://careers.acme.com")
	assert.Contains(t, urls, "https://acme.com/careers")
	assert.Contains(t, urls, "https://acme.com/jobs")

	seen := make(map[string]int)
	for _, u := range urls {
		seen[u]++
	}
	for u, n := range seen {
		assert.Equal(t, 1, n, "duplicate URL %s", u)
	}
}
