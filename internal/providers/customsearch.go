package providers

import (
	"context"
	"fmt"
	"strings"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/jobsearch/internal/credentials"
	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const (
	googleSearchName    = "google-search"
	googleSearchResults = 10
)

// GoogleSearch runs a Programmable Search Engine query as the final last
// resort. Search snippets carry no structured job data, so titles and
// locations are extracted heuristically and results are marked as recently
// posted rather than dated.
type GoogleSearch struct {
	Credentials credentials.Store

	// Endpoint overrides the API endpoint in tests.
	Endpoint string
}

func (p *GoogleSearch) Name() string { return googleSearchName }

func (p *GoogleSearch) Fetch(ctx context.Context, company string) Result {
	key := p.Credentials.Get(credentials.KeyGoogleSearch)
	cx := p.Credentials.Get(credentials.KeyGoogleSearchCX)
	if key == "" || cx == "" {
		return Skip(googleSearchName)
	}

	clientOpts := []option.ClientOption{option.WithAPIKey(key)}
	if p.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(p.Endpoint))
	}
	svc, err := customsearch.NewService(ctx, clientOpts...)
	if err != nil {
		return Failure(googleSearchName, err)
	}

	query := fmt.Sprintf("%s jobs openings hiring", company)
	resp, err := svc.Cse.List().Cx(cx).Q(query).Num(googleSearchResults).Context(ctx).Do()
	if err != nil {
		return Failure(googleSearchName, err)
	}

	var jobs []types.JobResult
	for _, item := range resp.Items {
		title := searchResultTitle(item.Title, company)
		if title == "" {
			continue
		}
		job := types.JobResult{
			Title:       title,
			Location:    searchResultLocation(item.Snippet),
			SourceURL:   item.Link,
			DatePosted:  normalize.RecentlyPosted,
			Description: normalize.TruncateEllipsis(item.Snippet, normalize.DescriptionBudget),
			Company:     company,
			ATSSource:   searchResultSource(item.Link),
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return OK(googleSearchName, jobs)
}

// searchResultSource labels a result by the job board its link points at,
// falling back to the generic search label for unrecognized hosts.
func searchResultSource(link string) string {
	if platform := fetch.DetectPlatform(link); platform != fetch.PlatformUnknown {
		return platform.Label()
	}
	return "Google Search"
}

// searchResultTitle cleans a search result title down to the job title.
// Result titles look like "Senior Engineer - Acme Careers" or
// "Acme | Staff Designer"; the company and site chrome come off.
func searchResultTitle(title, company string) string {
	for _, sep := range []string{" - ", " | ", " – "} {
		if idx := strings.Index(title, sep); idx > 0 {
			left := strings.TrimSpace(title[:idx])
			right := strings.TrimSpace(title[idx+len(sep):])
			if strings.Contains(strings.ToLower(left), strings.ToLower(company)) {
				title = right
			} else {
				title = left
			}
			break
		}
	}
	title = strings.TrimSpace(title)
	lower := strings.ToLower(title)
	if lower == "" || lower == "careers" || lower == "jobs" || lower == strings.ToLower(company) {
		return ""
	}
	return title
}

// searchResultLocation pulls a "City, ST" style token out of a snippet when
// one is present.
func searchResultLocation(snippet string) string {
	for _, field := range strings.FieldsFunc(snippet, func(r rune) bool {
		return r == '.' || r == ';' || r == '\n'
	}) {
		parts := strings.Split(strings.TrimSpace(field), ", ")
		if len(parts) != 2 || len(parts[1]) != 2 || strings.ToUpper(parts[1]) != parts[1] {
			continue
		}
		// Walk back from the state code and keep the capitalized run
		// before it as the city name.
		words := strings.Fields(parts[0])
		var city []string
		for i := len(words) - 1; i >= 0; i-- {
			if words[i][0] < 'A' || words[i][0] > 'Z' {
				break
			}
			city = append([]string{words[i]}, city...)
		}
		if len(city) > 0 {
			return strings.Join(city, " ") + ", " + parts[1]
		}
	}
	return ""
}
