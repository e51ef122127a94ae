package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/identifiers"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const ashbyName = "ashby"

// Ashby probes the public Ashby posting API across generated company
// identifiers.
type Ashby struct {
	Timeout time.Duration

	// BaseURL overrides the API endpoint in tests.
	BaseURL string
}

type ashbyResponse struct {
	Jobs []ashbyJob `json:"jobs"`
}

type ashbyJob struct {
	Title                   string `json:"title"`
	LocationName            string `json:"location"`
	JobURL                  string `json:"jobUrl"`
	ApplyURL                string `json:"applyUrl"`
	EmploymentType          string `json:"employmentType"`
	PublishedAt             string `json:"publishedAt"`
	CompensationTierSummary string `json:"compensationTierSummary"`
	IsListed                bool   `json:"isListed"`
}

func (p *Ashby) Name() string { return ashbyName }

func (p *Ashby) Fetch(ctx context.Context, company string) Result {
	base := p.BaseURL
	if base == "" {
		base = "https://api.ashbyhq.com"
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	for _, id := range identifiers.Generate(company) {
		var resp ashbyResponse
		url := fmt.Sprintf("%s/posting-api/job-board/%s?includeCompensation=true", base, id)
		if err := fetch.JSON(ctx, url, opts, &resp); err != nil {
			if ctx.Err() != nil {
				return Failure(ashbyName, ctx.Err())
			}
			continue
		}
		if len(resp.Jobs) == 0 {
			continue
		}
		return OK(ashbyName, ashbyJobs(resp.Jobs, company))
	}
	return OK(ashbyName, nil)
}

func ashbyJobs(items []ashbyJob, company string) []types.JobResult {
	jobs := make([]types.JobResult, 0, len(items))
	for _, item := range items {
		sourceURL := item.JobURL
		if sourceURL == "" {
			sourceURL = item.ApplyURL
		}
		job := types.JobResult{
			Title:      item.Title,
			Location:   item.LocationName,
			SourceURL:  sourceURL,
			Salary:     item.CompensationTierSummary,
			DatePosted: normalize.HumanizeDate(item.PublishedAt, time.Now()),
			JobType:    item.EmploymentType,
			Company:    company,
			ATSSource:  "Ashby",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return jobs
}
