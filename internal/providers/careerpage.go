package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/jobsearch/internal/companies"
	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/identifiers"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const careerPageName = "career-page"

// CareerPage finds a company's own career site. For well-known companies it
// points at the hand-verified page directly; for everyone else it probes a
// handful of guessed URLs and extracts schema.org JobPosting structured data
// when the page carries it. Pages without structured data still yield a
// pointer result so the caller has somewhere to send the user.
type CareerPage struct {
	Timeout time.Duration

	// GuessURLs overrides URL guessing in tests.
	GuessURLs func(company string) []string
}

func (p *CareerPage) Name() string { return careerPageName }

func (p *CareerPage) Fetch(ctx context.Context, company string) Result {
	if page, ok := companies.KnownCareerPage(company); ok {
		job := types.JobResult{
			Title:     "Various Open Positions",
			Count:     "Multiple",
			SourceURL: page.URL,
			Company:   page.Name,
			ATSSource: "Company Career Page",
		}
		normalize.ApplyDefaults(&job, company)
		return OK(careerPageName, []types.JobResult{job})
	}

	guess := p.GuessURLs
	if guess == nil {
		guess = GuessCareerURLs
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	for _, candidate := range guess(company) {
		result, err := fetch.URL(ctx, candidate, opts)
		if err != nil {
			if ctx.Err() != nil {
				return Failure(careerPageName, ctx.Err())
			}
			continue
		}
		if jobs := extractJobPostings(result.Body, company); len(jobs) > 0 {
			return OK(careerPageName, jobs)
		}
		// Page exists but exposes no structured data.
		job := types.JobResult{
			Title:     "Check Career Page",
			Count:     "Unknown",
			SourceURL: candidate,
			Company:   company,
			ATSSource: "Company Career Page",
		}
		normalize.ApplyDefaults(&job, company)
		return OK(careerPageName, []types.JobResult{job})
	}
	return OK(careerPageName, nil)
}

// GuessCareerURLs builds the candidate career site URLs for a company from
// its generated identifiers. Only the first few identifiers are used; the
// later variants rarely match real domains.
func GuessCareerURLs(company string) []string {
	ids := identifiers.Generate(company)
	if len(ids) > 3 {
		ids = ids[:3]
	}
	var urls []string
	seen := make(map[string]struct{})
	for _, id := range ids {
		if strings.ContainsAny(id, "._") {
			continue
		}
		for _, u := range []string{
			fmt.Sprintf("https://careers.%s.com", id),
			fmt.Sprintf("https://%s.com/careers", id),
			fmt.Sprintf("https://%s.com/jobs", id),
		} {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
		}
	}
	return urls
}

// jsonLDPosting is the subset of schema.org JobPosting we read.
type jsonLDPosting struct {
	Type           string `json:"@type"`
	Title          string `json:"title"`
	DatePosted     string `json:"datePosted"`
	EmploymentType string `json:"employmentType"`
	URL            string `json:"url"`
	JobLocation    struct {
		Address struct {
			AddressLocality string `json:"addressLocality"`
			AddressRegion   string `json:"addressRegion"`
			AddressCountry  string `json:"addressCountry"`
		} `json:"address"`
	} `json:"jobLocation"`
	BaseSalary struct {
		Value struct {
			Value    float64 `json:"value"`
			MinValue float64 `json:"minValue"`
			MaxValue float64 `json:"maxValue"`
		} `json:"value"`
		Currency string `json:"currency"`
	} `json:"baseSalary"`
}

func extractJobPostings(html []byte, company string) []types.JobResult {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil
	}

	var jobs []types.JobResult
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		raw := strings.TrimSpace(s.Text())
		for _, posting := range decodePostings(raw) {
			if !strings.EqualFold(posting.Type, "JobPosting") || posting.Title == "" {
				continue
			}
			addr := posting.JobLocation.Address
			job := types.JobResult{
				Title:      posting.Title,
				Location:   normalize.JoinLocation(addr.AddressLocality, addr.AddressRegion, addr.AddressCountry),
				SourceURL:  posting.URL,
				Salary:     jsonLDSalary(posting),
				DatePosted: normalize.HumanizeDate(posting.DatePosted, time.Now()),
				JobType:    posting.EmploymentType,
				Company:    company,
				ATSSource:  "Company Career Page",
			}
			normalize.ApplyDefaults(&job, company)
			jobs = append(jobs, job)
		}
	})
	return jobs
}

// decodePostings handles both a single JobPosting object and an array of
// them inside one script tag.
func decodePostings(raw string) []jsonLDPosting {
	var one jsonLDPosting
	if err := json.Unmarshal([]byte(raw), &one); err == nil && one.Type != "" {
		return []jsonLDPosting{one}
	}
	var many []jsonLDPosting
	if err := json.Unmarshal([]byte(raw), &many); err == nil {
		return many
	}
	return nil
}

func jsonLDSalary(posting jsonLDPosting) string {
	v := posting.BaseSalary.Value
	currency := posting.BaseSalary.Currency
	if currency == "" {
		currency = "USD"
	}
	switch {
	case v.MinValue > 0 && v.MaxValue > 0:
		return fmt.Sprintf("%.0f - %.0f %s", v.MinValue, v.MaxValue, currency)
	case v.Value > 0:
		return fmt.Sprintf("%.0f %s", v.Value, currency)
	}
	return ""
}
