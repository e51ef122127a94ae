package providers

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/identifiers"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const rssName = "rss"

// RSS pulls job postings from feeds: guessed per-company feeds first, then
// the public remote job boards filtered down to items that mention the
// company. Feed items have no structure beyond title and link, so results
// from this source are sparse.
type RSS struct {
	Timeout time.Duration

	// Feeds overrides the feed URL list in tests.
	Feeds func(company string) []string
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title string    `xml:"title"`
	Items []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
}

// jobKeywords filters generic feed items down to actual postings.
var jobKeywords = []string{
	"engineer", "developer", "manager", "designer", "analyst", "scientist",
	"director", "lead", "specialist", "coordinator", "architect", "intern",
	"hiring", "position", "job",
}

func (p *RSS) Name() string { return rssName }

func (p *RSS) Fetch(ctx context.Context, company string) Result {
	feeds := p.Feeds
	if feeds == nil {
		feeds = defaultFeeds
	}
	opts := &fetch.Options{Timeout: p.Timeout}

	var jobs []types.JobResult
	for _, feedURL := range feeds(company) {
		result, err := fetch.URL(ctx, feedURL, opts)
		if err != nil {
			if ctx.Err() != nil {
				return Failure(rssName, ctx.Err())
			}
			continue
		}
		var feed rssFeed
		if err := xml.Unmarshal(result.Body, &feed); err != nil {
			continue
		}
		jobs = append(jobs, feedJobs(feed, company)...)
	}
	return OK(rssName, jobs)
}

func defaultFeeds(company string) []string {
	ids := identifiers.Generate(company)
	var feeds []string
	if len(ids) > 0 && !strings.ContainsAny(ids[0], "._") {
		feeds = append(feeds,
			fmt.Sprintf("https://%s.com/careers/feed", ids[0]),
			fmt.Sprintf("https://careers.%s.com/feed", ids[0]),
		)
	}
	feeds = append(feeds,
		"https://remotive.com/feed",
		"https://weworkremotely.com/remote-jobs.rss",
	)
	return feeds
}

func feedJobs(feed rssFeed, company string) []types.JobResult {
	companyLower := strings.ToLower(company)
	var jobs []types.JobResult
	for _, item := range feed.Channel.Items {
		titleLower := strings.ToLower(item.Title)
		descLower := strings.ToLower(item.Description)

		// Public boards list every company; keep only items that mention
		// the one we are searching for.
		if !strings.Contains(titleLower, companyLower) && !strings.Contains(descLower, companyLower) {
			continue
		}
		if !containsAny(titleLower, jobKeywords) {
			continue
		}

		job := types.JobResult{
			Title:       cleanFeedTitle(item.Title, company),
			SourceURL:   item.Link,
			DatePosted:  normalize.HumanizeDate(item.PubDate, time.Now()),
			Description: normalize.TruncateEllipsis(stripTags(item.Description), normalize.DescriptionBudget),
			Company:     company,
			ATSSource:   "RSS Feed",
		}
		normalize.ApplyDefaults(&job, company)
		jobs = append(jobs, job)
	}
	return jobs
}

// cleanFeedTitle strips "Company: Title" prefixes the remote boards use.
func cleanFeedTitle(title, company string) string {
	if idx := strings.Index(title, ": "); idx > 0 {
		prefix := strings.ToLower(title[:idx])
		if strings.Contains(prefix, strings.ToLower(company)) {
			return strings.TrimSpace(title[idx+2:])
		}
	}
	return strings.TrimSpace(title)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// stripTags removes HTML tags from feed descriptions. Feeds embed markup
// inconsistently; a linear scan is enough here.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
