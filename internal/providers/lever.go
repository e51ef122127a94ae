package providers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/identifiers"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const leverName = "lever"

// Lever probes the public Lever postings API across generated company
// identifiers.
type Lever struct {
	Timeout time.Duration

	// BaseURL overrides the API endpoint in tests.
	BaseURL string
}

type leverPosting struct {
	Text       string `json:"text"`
	HostedURL  string `json:"hostedUrl"`
	ApplyURL   string `json:"applyUrl"`
	CreatedAt  int64  `json:"createdAt"`
	Categories struct {
		Location   string `json:"location"`
		Commitment string `json:"commitment"`
	} `json:"categories"`
	SalaryDescription string `json:"salaryDescription"`
	DescriptionPlain  string `json:"descriptionPlain"`
}

func (p *Lever) Name() string { return leverName }

func (p *Lever) Fetch(ctx context.Context, company string) Result {
	base := p.BaseURL
	if base == "" {
		base = "https://api.lever.co"
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	for _, id := range identifiers.Generate(company) {
		var postings []leverPosting
		url := fmt.Sprintf("%s/v0/postings/%s?mode=json", base, id)
		if err := fetch.JSON(ctx, url, opts, &postings); err != nil {
			if ctx.Err() != nil {
				return Failure(leverName, ctx.Err())
			}
			continue
		}
		if len(postings) == 0 {
			continue
		}
		return OK(leverName, leverJobs(postings, company))
	}
	return OK(leverName, nil)
}

func leverJobs(postings []leverPosting, company string) []types.JobResult {
	jobs := make([]types.JobResult, 0, len(postings))
	for _, posting := range postings {
		sourceURL := posting.HostedURL
		if sourceURL == "" {
			sourceURL = posting.ApplyURL
		}
		job := types.JobResult{
			Title:       posting.Text,
			Location:    posting.Categories.Location,
			SourceURL:   sourceURL,
			Salary:      posting.SalaryDescription,
			DatePosted:  normalize.HumanizeDate(strconv.FormatInt(posting.CreatedAt, 10), time.Now()),
			JobType:     posting.Categories.Commitment,
			Description: normalize.TruncateEllipsis(posting.DescriptionPlain, normalize.DescriptionBudget),
			Company:     company,
			ATSSource:   "Lever",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return jobs
}
