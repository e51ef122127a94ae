package providers

import (
	"fmt"
	"time"

	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

// LinkedInActor returns only the LinkedIn scraper, for the single-actor
// instance that runs with the credentialed fallbacks ahead of the full
// actor sweep.
func LinkedInActor() []Actor {
	for _, a := range DefaultActors() {
		if a.Label == "LinkedIn" {
			return []Actor{a}
		}
	}
	return nil
}

// DefaultActors returns the standard Apify actor set: maintained scrapers
// for the big job boards plus a generic structured-data scraper pointed at
// guessed career pages.
func DefaultActors() []Actor {
	return []Actor{
		{
			ID:       "bebity~linkedin-jobs-scraper",
			Label:    "LinkedIn",
			Prebuilt: true,
			Input: func(company string) map[string]any {
				return map[string]any{
					"title":    "",
					"location": "United States",
					"company":  company,
					"rows":     10,
				}
			},
			Map: func(item map[string]any, company string) (types.JobResult, bool) {
				title := str(item["title"])
				if title == "" {
					return types.JobResult{}, false
				}
				return types.JobResult{
					Title:      title,
					Location:   str(item["location"]),
					SourceURL:  firstStr(item, "link", "jobUrl"),
					Salary:     str(item["salary"]),
					DatePosted: normalize.HumanizeDate(str(item["publishedAt"]), time.Now()),
					JobType:    str(item["contractType"]),
					Company:    normalize.CleanCompany(str(item["companyName"]), company),
					ATSSource:  "LinkedIn",
				}, true
			},
		},
		{
			ID:       "curious_coder~indeed-scraper",
			Label:    "Indeed",
			Prebuilt: true,
			Input: func(company string) map[string]any {
				return map[string]any{
					"position":            company,
					"country":             "US",
					"maxItems":            10,
					"parseCompanyDetails": false,
				}
			},
			Map: func(item map[string]any, company string) (types.JobResult, bool) {
				title := firstStr(item, "positionName", "title")
				if title == "" {
					return types.JobResult{}, false
				}
				return types.JobResult{
					Title:       title,
					Location:    str(item["location"]),
					SourceURL:   str(item["url"]),
					Salary:      str(item["salary"]),
					DatePosted:  normalize.HumanizeDate(str(item["postedAt"]), time.Now()),
					JobType:     str(item["jobType"]),
					Description: normalize.TruncateEllipsis(str(item["description"]), normalize.DescriptionBudget),
					Company:     normalize.CleanCompany(str(item["company"]), company),
					ATSSource:   "Indeed",
				}, true
			},
		},
		{
			ID:       "codemaverick~naukri-job-scraper-latest",
			Label:    "Naukri",
			Prebuilt: true,
			Input: func(company string) map[string]any {
				return map[string]any{
					"keyword": company,
					"maxJobs": 10,
				}
			},
			Map: func(item map[string]any, company string) (types.JobResult, bool) {
				title := str(item["title"])
				if title == "" {
					return types.JobResult{}, false
				}
				return types.JobResult{
					Title:      title,
					Location:   str(item["location"]),
					SourceURL:  firstStr(item, "jdURL", "url"),
					Salary:     str(item["salary"]),
					DatePosted: normalize.HumanizeDate(str(item["postedDate"]), time.Now()),
					Company:    normalize.CleanCompany(str(item["companyName"]), company),
					ATSSource:  "Naukri",
				}, true
			},
		},
		{
			ID:       "apify~web-scraper",
			Label:    "Career Page Scrape",
			Prebuilt: false,
			Input: func(company string) map[string]any {
				var starts []map[string]string
				for _, u := range GuessCareerURLs(company) {
					starts = append(starts, map[string]string{"url": u})
				}
				return map[string]any{
					"startUrls":    starts,
					"pageFunction": fmt.Sprintf(jsonLDPageFunction, company),
				}
			},
			Map: func(item map[string]any, company string) (types.JobResult, bool) {
				title := str(item["title"])
				if title == "" {
					return types.JobResult{}, false
				}
				return types.JobResult{
					Title:      title,
					Location:   str(item["location"]),
					SourceURL:  str(item["url"]),
					DatePosted: normalize.HumanizeDate(str(item["datePosted"]), time.Now()),
					JobType:    str(item["employmentType"]),
					Company:    company,
					ATSSource:  "Company Career Page",
				}, true
			},
		},
	}
}

// jsonLDPageFunction runs inside the generic web scraper and pulls
// schema.org JobPosting entries out of the visited page.
const jsonLDPageFunction = `async function pageFunction(context) {
	const results = [];
	for (const el of document.querySelectorAll('script[type="application/ld+json"]')) {
		let data;
		try { data = JSON.parse(el.textContent); } catch { continue; }
		const postings = Array.isArray(data) ? data : [data];
		for (const p of postings) {
			if (p['@type'] !== 'JobPosting' || !p.title) continue;
			results.push({
				title: p.title,
				location: (((p.jobLocation || {}).address || {}).addressLocality) || '',
				url: p.url || context.request.url,
				datePosted: p.datePosted || '',
				employmentType: p.employmentType || '',
				company: %q,
			});
		}
	}
	return results;
}`

func firstStr(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := str(item[key]); s != "" {
			return s
		}
	}
	return ""
}
