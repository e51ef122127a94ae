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

const greenhouseName = "greenhouse"

// Greenhouse probes the public Greenhouse board API. Board identifiers are
// not discoverable, so each generated company identifier is tried in turn
// until one board answers with jobs.
type Greenhouse struct {
	Timeout time.Duration

	// BaseURL overrides the API endpoint in tests.
	BaseURL string
}

type greenhouseResponse struct {
	Jobs []greenhouseJob `json:"jobs"`
}

type greenhouseJob struct {
	Title       string `json:"title"`
	AbsoluteURL string `json:"absolute_url"`
	UpdatedAt   string `json:"updated_at"`
	Content     string `json:"content"`
	Location    struct {
		Name string `json:"name"`
	} `json:"location"`
	Offices []struct {
		Name string `json:"name"`
	} `json:"offices"`
	Metadata []struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
	} `json:"metadata"`
}

func (p *Greenhouse) Name() string { return greenhouseName }

func (p *Greenhouse) Fetch(ctx context.Context, company string) Result {
	base := p.BaseURL
	if base == "" {
		base = "https://api.greenhouse.io"
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	for _, id := range identifiers.Generate(company) {
		var resp greenhouseResponse
		url := fmt.Sprintf("%s/v1/boards/%s/jobs?content=true", base, id)
		if err := fetch.JSON(ctx, url, opts, &resp); err != nil {
			if ctx.Err() != nil {
				return Failure(greenhouseName, ctx.Err())
			}
			continue
		}
		if len(resp.Jobs) == 0 {
			continue
		}
		return OK(greenhouseName, greenhouseJobs(resp.Jobs, company))
	}
	return OK(greenhouseName, nil)
}

func greenhouseJobs(items []greenhouseJob, company string) []types.JobResult {
	jobs := make([]types.JobResult, 0, len(items))
	for _, item := range items {
		location := item.Location.Name
		if location == "" && len(item.Offices) > 0 {
			location = item.Offices[0].Name
		}
		job := types.JobResult{
			Title:      item.Title,
			Location:   location,
			SourceURL:  item.AbsoluteURL,
			Salary:     normalize.ExtractSalary(item.Content),
			DatePosted: normalize.HumanizeDate(item.UpdatedAt, time.Now()),
			JobType:    greenhouseEmploymentType(item),
			Company:    company,
			ATSSource:  "Greenhouse",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return jobs
}

func greenhouseEmploymentType(item greenhouseJob) string {
	for _, m := range item.Metadata {
		if m.Name == "Employment Type" {
			if s, ok := m.Value.(string); ok {
				return s
			}
		}
	}
	return ""
}
