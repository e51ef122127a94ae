package providers

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jonathan/jobsearch/internal/credentials"
	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const (
	jsearchName    = "jsearch"
	jsearchHost    = "jsearch.p.rapidapi.com"
	jsearchBaseURL = "https://" + jsearchHost

	// JSearch descriptions run to several kilobytes; keep enough to be
	// useful in a list view.
	jsearchDescriptionLimit = 300
)

// JSearch queries the JSearch RapidAPI aggregator, which indexes Google for
// Jobs results across most job boards. It is the broadest single source we
// have and runs as the first stage of every search.
type JSearch struct {
	Credentials credentials.Store
	Timeout     time.Duration

	// BaseURL overrides the RapidAPI endpoint in tests.
	BaseURL string
}

type jsearchResponse struct {
	Status string        `json:"status"`
	Data   []jsearchItem `json:"data"`
}

type jsearchItem struct {
	JobTitle          string  `json:"job_title"`
	EmployerName      string  `json:"employer_name"`
	JobCity           string  `json:"job_city"`
	JobState          string  `json:"job_state"`
	JobCountry        string  `json:"job_country"`
	JobApplyLink      string  `json:"job_apply_link"`
	JobDescription    string  `json:"job_description"`
	JobEmploymentType string  `json:"job_employment_type"`
	JobPostedAt       string  `json:"job_posted_at_datetime_utc"`
	JobMinSalary      float64 `json:"job_min_salary"`
	JobMaxSalary      float64 `json:"job_max_salary"`
	JobSalaryCurrency string  `json:"job_salary_currency"`
	JobSalaryPeriod   string  `json:"job_salary_period"`
}

func (p *JSearch) Name() string { return jsearchName }

func (p *JSearch) Fetch(ctx context.Context, company string) Result {
	key := p.Credentials.Get(credentials.KeyJSearch)
	if key == "" {
		return Skip(jsearchName)
	}

	base := p.BaseURL
	if base == "" {
		base = jsearchBaseURL
	}

	params := url.Values{}
	params.Set("query", fmt.Sprintf("jobs at %s", company))
	params.Set("page", "1")
	params.Set("num_pages", "1")
	params.Set("date_posted", "all")
	params.Set("employment_types", "FULLTIME,PARTTIME,CONTRACTOR,INTERN")
	params.Set("country", "us")

	opts := &fetch.Options{
		Timeout: p.Timeout,
		Headers: map[string]string{
			"X-RapidAPI-Key":  key,
			"X-RapidAPI-Host": jsearchHost,
		},
	}

	var resp jsearchResponse
	if err := fetch.JSON(ctx, base+"/search?"+params.Encode(), opts, &resp); err != nil {
		return Failure(jsearchName, err)
	}

	jobs := make([]types.JobResult, 0, len(resp.Data))
	for _, item := range resp.Data {
		job := types.JobResult{
			Title:       item.JobTitle,
			Location:    normalize.JoinLocation(item.JobCity, item.JobState, item.JobCountry),
			SourceURL:   item.JobApplyLink,
			Salary:      jsearchSalary(item),
			DatePosted:  normalize.HumanizeDate(item.JobPostedAt, time.Now()),
			JobType:     item.JobEmploymentType,
			Description: normalize.TruncateEllipsis(item.JobDescription, jsearchDescriptionLimit),
			Company:     normalize.CleanCompany(item.EmployerName, company),
			ATSSource:   "JSearch",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return OK(jsearchName, jobs)
}

func jsearchSalary(item jsearchItem) string {
	if item.JobMinSalary <= 0 && item.JobMaxSalary <= 0 {
		return ""
	}
	currency := item.JobSalaryCurrency
	if currency == "" {
		currency = "USD"
	}
	switch {
	case item.JobMinSalary > 0 && item.JobMaxSalary > 0:
		return fmt.Sprintf("%.0f - %.0f %s", item.JobMinSalary, item.JobMaxSalary, currency)
	case item.JobMinSalary > 0:
		return fmt.Sprintf("From %.0f %s", item.JobMinSalary, currency)
	default:
		return fmt.Sprintf("Up to %.0f %s", item.JobMaxSalary, currency)
	}
}
