package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobsearch/internal/credentials"
)

func TestDiffbotSkipsWithoutToken(t *testing.T) {
	p := &Diffbot{Credentials: credentials.Static{}}
	result := p.Fetch(context.Background(), "Acme")
	assert.False(t, result.Success)
	assert.NoError(t, result.Err)
}

func TestDiffbotFetch(t *testing.T) {
	var analyzed []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v3/analyze", r.URL.Path)
		assert.Equal(t, "tok", r.URL.Query().Get("token"))
		analyzed = append(analyzed, r.URL.Query().Get("url"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"objects": [
				{"title": "ML Engineer", "location": "Seattle, WA", "summary": "Train models.", "skills": ["python", "pytorch"]},
				{"title": "", "summary": "nav bar junk"}
			]
		}`))
	}))
	defer server.Close()

	p := &Diffbot{
		Credentials: credentials.Static{credentials.KeyDiffbot: "tok"},
		BaseURL:     server.URL,
		GuessURLs:   func(string) []string { return []string{"https://acme.example/careers"} },
	}
	result := p.Fetch(context.Background(), "Acme")
	require.True(t, result.Success)
	require.Len(t, result.Jobs, 1)

	assert.Equal(t, []string{"https://acme.example/careers"}, analyzed)
	job := result.Jobs[0]
	assert.Equal(t, "ML Engineer", job.Title)
	assert.Equal(t, "Seattle, WA", job.Location)
	assert.Equal(t, []string{"python", "pytorch"}, job.Skills)
	assert.Equal(t, "Diffbot", job.ATSSource)
}

func TestDiffbotCapsURLsAndObjects(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls == 1 {
			// No job-shaped objects on the first page.
			_, _ = w.Write([]byte(`{"objects": []}`))
			return
		}
		_, _ = w.Write([]byte(`{"objects": [
			{"title": "A"}, {"title": "B"}, {"title": "C"},
			{"title": "D"}, {"title": "E"}, {"title": "F"}, {"title": "G"}
		]}`))
	}))
	defer server.Close()

	p := &Diffbot{
		Credentials: credentials.Static{credentials.KeyDiffbot: "tok"},
		BaseURL:     server.URL,
		GuessURLs: func(string) []string {
			return []string{"https://a.example", "https://b.example", "https://c.example"}
		},
	}
	result := p.Fetch(context.Background(), "Acme")
	require.True(t, result.Success)
	assert.Equal(t, 2, calls)
	assert.Len(t, result.Jobs, 5)
}
