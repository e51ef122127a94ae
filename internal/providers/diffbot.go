package providers

import (
	"context"
	"net/url"
	"time"

	"github.com/jonathan/jobsearch/internal/credentials"
	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const (
	diffbotName       = "diffbot"
	diffbotMaxURLs    = 2
	diffbotMaxPerPage = 5
)

// Diffbot runs the Diffbot Analyze API over guessed career page URLs and
// keeps whatever job-shaped objects it finds. A token is required; without
// one the provider skips itself.
type Diffbot struct {
	Credentials credentials.Store
	Timeout     time.Duration

	// BaseURL overrides the API endpoint in tests.
	BaseURL string

	// GuessURLs overrides URL guessing in tests.
	GuessURLs func(company string) []string
}

type diffbotResponse struct {
	Objects []diffbotObject `json:"objects"`
}

type diffbotObject struct {
	Title    string   `json:"title"`
	Location string   `json:"location"`
	Summary  string   `json:"summary"`
	PageURL  string   `json:"pageUrl"`
	Skills   []string `json:"skills"`
}

func (p *Diffbot) Name() string { return diffbotName }

func (p *Diffbot) Fetch(ctx context.Context, company string) Result {
	token := p.Credentials.Get(credentials.KeyDiffbot)
	if token == "" {
		return Skip(diffbotName)
	}

	base := p.BaseURL
	if base == "" {
		base = "https://api.diffbot.com"
	}
	guess := p.GuessURLs
	if guess == nil {
		guess = GuessCareerURLs
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	candidates := guess(company)
	if len(candidates) > diffbotMaxURLs {
		candidates = candidates[:diffbotMaxURLs]
	}

	var lastErr error
	for _, candidate := range candidates {
		params := url.Values{}
		params.Set("token", token)
		params.Set("url", candidate)
		params.Set("fields", "objects.title,objects.location,objects.summary,objects.skills")

		var resp diffbotResponse
		if err := fetch.JSON(ctx, base+"/v3/analyze?"+params.Encode(), opts, &resp); err != nil {
			if ctx.Err() != nil {
				return Failure(diffbotName, ctx.Err())
			}
			lastErr = err
			continue
		}
		if jobs := diffbotJobs(resp.Objects, candidate, company); len(jobs) > 0 {
			return OK(diffbotName, jobs)
		}
	}
	if lastErr != nil {
		return Failure(diffbotName, lastErr)
	}
	return OK(diffbotName, nil)
}

func diffbotJobs(objects []diffbotObject, pageURL, company string) []types.JobResult {
	var jobs []types.JobResult
	for _, obj := range objects {
		if len(jobs) == diffbotMaxPerPage {
			break
		}
		if obj.Title == "" {
			continue
		}
		sourceURL := obj.PageURL
		if sourceURL == "" {
			sourceURL = pageURL
		}
		job := types.JobResult{
			Title:       obj.Title,
			Location:    obj.Location,
			SourceURL:   sourceURL,
			Description: normalize.TruncateEllipsis(obj.Summary, normalize.DescriptionBudget),
			Company:     company,
			ATSSource:   "Diffbot",
			Skills:      obj.Skills,
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return jobs
}
