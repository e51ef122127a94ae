// Package companies provides the static company directory used for
// autocomplete suggestions and for the known-company search heuristics.
package companies

import (
	"sort"
	"strings"

	"github.com/jonathan/jobsearch/internal/types"
)

// CareerPage is a hand-verified career site for a major company.
type CareerPage struct {
	URL  string
	Name string
}

// knownCareerPages maps lowercased company names to their career sites.
// Large companies rarely expose public ATS boards, so a direct pointer is
// the best free fallback we have for them.
var knownCareerPages = map[string]CareerPage{
	"google":     {URL: "https://careers.google.com", Name: "Google"},
	"apple":      {URL: "https://jobs.apple.com", Name: "Apple"},
	"microsoft":  {URL: "https://careers.microsoft.com", Name: "Microsoft"},
	"meta":       {URL: "https://careers.meta.com", Name: "Meta"},
	"facebook":   {URL: "https://careers.meta.com", Name: "Meta (Facebook)"},
	"amazon":     {URL: "https://amazon.jobs", Name: "Amazon"},
	"netflix":    {URL: "https://jobs.netflix.com", Name: "Netflix"},
	"tesla":      {URL: "https://careers.tesla.com", Name: "Tesla"},
	"uber":       {URL: "https://careers.uber.com", Name: "Uber"},
	"airbnb":     {URL: "https://careers.airbnb.com", Name: "Airbnb"},
	"spotify":    {URL: "https://careers.spotify.com", Name: "Spotify"},
	"stripe":     {URL: "https://stripe.com/jobs", Name: "Stripe"},
	"shopify":    {URL: "https://careers.shopify.com", Name: "Shopify"},
	"salesforce": {URL: "https://careers.salesforce.com", Name: "Salesforce"},
	"oracle":     {URL: "https://careers.oracle.com", Name: "Oracle"},
	"ibm":        {URL: "https://careers.ibm.com", Name: "IBM"},
	"intel":      {URL: "https://careers.intel.com", Name: "Intel"},
	"nvidia":     {URL: "https://careers.nvidia.com", Name: "NVIDIA"},
	"adobe":      {URL: "https://careers.adobe.com", Name: "Adobe"},
	"zoom":       {URL: "https://careers.zoom.us", Name: "Zoom"},
}

// majorCompanies is the allow-list behind the known-company stage. Large,
// well-established companies are the ones most likely to need the free
// fallback bundle: their ATS and RSS footprint is well known, while paid
// scrapers rarely add anything for them. Matching is substring in both
// directions; this is deliberately not a general fuzzy matcher.
var majorCompanies = []string{
	"netflix", "google", "apple", "microsoft", "meta", "amazon", "tesla",
}

// IsMajor reports whether a free-text company name matches the allow-list
// of large, well-known companies.
func IsMajor(companyName string) bool {
	name := strings.ToLower(strings.TrimSpace(companyName))
	if name == "" {
		return false
	}
	for _, known := range majorCompanies {
		if strings.Contains(name, known) || strings.Contains(known, name) {
			return true
		}
	}
	return false
}

// KnownCareerPage looks up the hand-verified career site for a company.
func KnownCareerPage(companyName string) (CareerPage, bool) {
	page, ok := knownCareerPages[strings.ToLower(strings.TrimSpace(companyName))]
	return page, ok
}

// Suggest returns directory entries matching a partial query, ranked:
// exact-prefix matches first, then word-prefix matches, then substring
// matches, alphabetical within each tier. An empty query returns the first
// entries of the directory in alphabetical order.
func Suggest(query string, limit int) []types.CompanySuggestion {
	if limit <= 0 {
		limit = 8
	}
	q := strings.ToLower(strings.TrimSpace(query))

	type ranked struct {
		suggestion types.CompanySuggestion
		tier       int
	}

	var matches []ranked
	for _, c := range directory {
		name := strings.ToLower(c.Name)
		switch {
		case q == "":
			matches = append(matches, ranked{c, 0})
		case strings.HasPrefix(name, q):
			matches = append(matches, ranked{c, 0})
		case wordPrefix(name, q):
			matches = append(matches, ranked{c, 1})
		case strings.Contains(name, q):
			matches = append(matches, ranked{c, 2})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].tier != matches[j].tier {
			return matches[i].tier < matches[j].tier
		}
		return matches[i].suggestion.Name < matches[j].suggestion.Name
	})

	out := make([]types.CompanySuggestion, 0, limit)
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, m.suggestion)
	}
	return out
}

func wordPrefix(name, q string) bool {
	for _, word := range strings.Fields(name) {
		if strings.HasPrefix(word, q) {
			return true
		}
	}
	return false
}
