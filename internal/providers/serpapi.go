package providers

import (
	"context"
	"fmt"
	"time"

	serpapi "github.com/serpapi/google-search-results-golang"

	"github.com/jonathan/jobsearch/internal/credentials"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const (
	serpAPIName    = "serpapi"
	serpAPIMaxJobs = 10
)

// SerpAPI queries the Google Jobs engine through SerpAPI. It is a paid
// fallback; without a configured key the provider skips itself.
type SerpAPI struct {
	Credentials credentials.Store

	// Search overrides the SerpAPI client in tests.
	Search func(params map[string]string, apiKey string) (map[string]interface{}, error)
}

func (p *SerpAPI) Name() string { return serpAPIName }

func (p *SerpAPI) Fetch(ctx context.Context, company string) Result {
	key := p.Credentials.Get(credentials.KeySerpAPI)
	if key == "" {
		return Skip(serpAPIName)
	}

	search := p.Search
	if search == nil {
		search = func(params map[string]string, apiKey string) (map[string]interface{}, error) {
			s := serpapi.NewGoogleSearch(params, apiKey)
			return s.GetJSON()
		}
	}

	params := map[string]string{
		"engine": "google_jobs",
		"q":      fmt.Sprintf("%s jobs", company),
		"hl":     "en",
	}

	type outcome struct {
		data map[string]interface{}
		err  error
	}
	// The SerpAPI client has no context support; run it in a goroutine so
	// the caller's deadline still applies.
	ch := make(chan outcome, 1)
	go func() {
		data, err := search(params, key)
		ch <- outcome{data, err}
	}()

	var data map[string]interface{}
	select {
	case <-ctx.Done():
		return Failure(serpAPIName, ctx.Err())
	case result := <-ch:
		if result.err != nil {
			return Failure(serpAPIName, result.err)
		}
		data = result.data
	}

	return OK(serpAPIName, serpAPIJobs(data, company))
}

func serpAPIJobs(data map[string]interface{}, company string) []types.JobResult {
	raw, _ := data["jobs_results"].([]interface{})
	var jobs []types.JobResult
	for _, entry := range raw {
		if len(jobs) == serpAPIMaxJobs {
			break
		}
		item, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		extensions, _ := item["detected_extensions"].(map[string]interface{})
		job := types.JobResult{
			Title:       str(item["title"]),
			Location:    str(item["location"]),
			SourceURL:   serpAPILink(item),
			Salary:      str(extensions["salary"]),
			DatePosted:  normalize.HumanizeDate(str(extensions["posted_at"]), time.Now()),
			JobType:     str(extensions["schedule_type"]),
			Description: normalize.TruncateEllipsis(str(item["description"]), normalize.DescriptionBudget),
			Company:     normalize.CleanCompany(str(item["company_name"]), company),
			ATSSource:   "Google Jobs",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return jobs
}

func serpAPILink(item map[string]interface{}) string {
	if related, ok := item["related_links"].([]interface{}); ok && len(related) > 0 {
		if first, ok := related[0].(map[string]interface{}); ok {
			if link := str(first["link"]); link != "" {
				return link
			}
		}
	}
	if options, ok := item["apply_options"].([]interface{}); ok && len(options) > 0 {
		if first, ok := options[0].(map[string]interface{}); ok {
			return str(first["link"])
		}
	}
	return ""
}

func str(v interface{}) string {
	s, _ := v.(string)
	return s
}
