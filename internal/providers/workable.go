package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/identifiers"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const workableName = "workable"

// Workable probes the public Workable widget API across generated company
// identifiers. Workable serves boards on per-account subdomains, so the
// identifier is part of the host rather than the path.
type Workable struct {
	Timeout time.Duration

	// BaseURLPattern overrides the per-account URL in tests. It must
	// contain one %s verb for the account identifier.
	BaseURLPattern string
}

type workableResponse struct {
	Name string        `json:"name"`
	Jobs []workableJob `json:"jobs"`
}

type workableJob struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	ShortCode   string `json:"shortcode"`
	PublishedOn string `json:"published_on"`
	Location    struct {
		City    string `json:"city"`
		Country string `json:"country"`
	} `json:"location"`
	Type string `json:"type"`
}

func (p *Workable) Name() string { return workableName }

func (p *Workable) Fetch(ctx context.Context, company string) Result {
	pattern := p.BaseURLPattern
	if pattern == "" {
		pattern = "https://%s.workable.com"
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	for _, id := range identifiers.Generate(company) {
		// Subdomains cannot carry dots or underscores.
		if strings.ContainsAny(id, "._") {
			continue
		}
		var resp workableResponse
		url := fmt.Sprintf(pattern, id) + "/spi/v3/jobs"
		if err := fetch.JSON(ctx, url, opts, &resp); err != nil {
			if ctx.Err() != nil {
				return Failure(workableName, ctx.Err())
			}
			continue
		}
		if len(resp.Jobs) == 0 {
			continue
		}
		return OK(workableName, workableJobs(resp, company))
	}
	return OK(workableName, nil)
}

func workableJobs(resp workableResponse, company string) []types.JobResult {
	jobs := make([]types.JobResult, 0, len(resp.Jobs))
	for _, item := range resp.Jobs {
		job := types.JobResult{
			Title:      item.Title,
			Location:   normalize.JoinLocation(item.Location.City, "", item.Location.Country),
			SourceURL:  item.URL,
			DatePosted: normalize.HumanizeDate(item.PublishedOn, time.Now()),
			JobType:    item.Type,
			Company:    normalize.CleanCompany(resp.Name, company),
			ATSSource:  "Workable",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return jobs
}
