package providers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const (
	arbeitnowName = "arbeitnow"
	jobicyName    = "jobicy"
)

// Arbeitnow queries the free Arbeitnow job board API. The API searches all
// fields, so results are filtered down to postings actually at the company.
type Arbeitnow struct {
	Timeout time.Duration

	// BaseURL overrides the API endpoint in tests.
	BaseURL string
}

type arbeitnowResponse struct {
	Data []arbeitnowJob `json:"data"`
}

type arbeitnowJob struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	Location    string   `json:"location"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	JobTypes    []string `json:"job_types"`
	CreatedAt   int64    `json:"created_at"`
}

func (p *Arbeitnow) Name() string { return arbeitnowName }

func (p *Arbeitnow) Fetch(ctx context.Context, company string) Result {
	base := p.BaseURL
	if base == "" {
		base = "https://www.arbeitnow.com"
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	var resp arbeitnowResponse
	endpoint := base + "/api/job-board-api?search=" + url.QueryEscape(company)
	if err := fetch.JSON(ctx, endpoint, opts, &resp); err != nil {
		return Failure(arbeitnowName, err)
	}

	companyLower := strings.ToLower(company)
	var jobs []types.JobResult
	for _, item := range resp.Data {
		if !strings.Contains(strings.ToLower(item.CompanyName), companyLower) {
			continue
		}
		job := types.JobResult{
			Title:       item.Title,
			Location:    item.Location,
			SourceURL:   item.URL,
			DatePosted:  normalize.HumanizeDate(strconv.FormatInt(item.CreatedAt, 10), time.Now()),
			JobType:     strings.Join(item.JobTypes, ", "),
			Description: normalize.TruncateEllipsis(stripTags(item.Description), normalize.DescriptionBudget),
			Company:     normalize.CleanCompany(item.CompanyName, company),
			ATSSource:   "Arbeitnow",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return OK(arbeitnowName, jobs)
}

// Jobicy queries the free Jobicy remote jobs API, filtered to postings at
// the company.
type Jobicy struct {
	Timeout time.Duration

	// BaseURL overrides the API endpoint in tests.
	BaseURL string
}

type jobicyResponse struct {
	Jobs []jobicyJob `json:"jobs"`
}

type jobicyJob struct {
	JobTitle        string  `json:"jobTitle"`
	CompanyName     string  `json:"companyName"`
	JobGeo          string  `json:"jobGeo"`
	URL             string  `json:"url"`
	JobType         any     `json:"jobType"`
	JobExcerpt      string  `json:"jobExcerpt"`
	PubDate         string  `json:"pubDate"`
	AnnualSalaryMin float64 `json:"annualSalaryMin"`
	AnnualSalaryMax float64 `json:"annualSalaryMax"`
	SalaryCurrency  string  `json:"salaryCurrency"`
}

func (p *Jobicy) Name() string { return jobicyName }

func (p *Jobicy) Fetch(ctx context.Context, company string) Result {
	base := p.BaseURL
	if base == "" {
		base = "https://jobicy.com"
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	var resp jobicyResponse
	endpoint := base + "/api/v2/remote-jobs?count=10&tag=" + url.QueryEscape(company)
	if err := fetch.JSON(ctx, endpoint, opts, &resp); err != nil {
		return Failure(jobicyName, err)
	}

	companyLower := strings.ToLower(company)
	var jobs []types.JobResult
	for _, item := range resp.Jobs {
		if !strings.Contains(strings.ToLower(item.CompanyName), companyLower) {
			continue
		}
		job := types.JobResult{
			Title:       item.JobTitle,
			Location:    item.JobGeo,
			SourceURL:   item.URL,
			Salary:      jobicySalary(item),
			DatePosted:  normalize.HumanizeDate(item.PubDate, time.Now()),
			JobType:     jobicyType(item.JobType),
			Description: normalize.TruncateEllipsis(stripTags(item.JobExcerpt), normalize.DescriptionBudget),
			Company:     normalize.CleanCompany(item.CompanyName, company),
			ATSSource:   "Jobicy",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return OK(jobicyName, jobs)
}

// jobicyType folds the API's string-or-array jobType field into a string.
func jobicyType(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []any:
		var parts []string
		for _, entry := range t {
			if s, ok := entry.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func jobicySalary(item jobicyJob) string {
	if item.AnnualSalaryMin <= 0 && item.AnnualSalaryMax <= 0 {
		return ""
	}
	currency := item.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}
	if item.AnnualSalaryMin > 0 && item.AnnualSalaryMax > 0 {
		return fmt.Sprintf("%.0f - %.0f %s", item.AnnualSalaryMin, item.AnnualSalaryMax, currency)
	}
	return fmt.Sprintf("%.0f %s", item.AnnualSalaryMin+item.AnnualSalaryMax, currency)
}
