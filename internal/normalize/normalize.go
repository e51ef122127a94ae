// Package normalize maps raw provider output into canonical job results
// and removes duplicate and placeholder postings.
package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/jobsearch/internal/types"
)

// DescriptionBudget is the default character budget for free-text descriptions.
const DescriptionBudget = 200

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$[\d,]+(?:\s*-\s*\$?[\d,]+)?(?:\s*(?:per\s+year|/year|annually|pa))?`),
	regexp.MustCompile(`(?i)[\d,]+k(?:\s*-\s*[\d,]+k)?(?:\s*(?:per\s+year|/year|annually|pa))?`),
}

// ApplyDefaults fills every required field of a job with its documented
// default so the required-field invariant holds after normalization.
func ApplyDefaults(job *types.JobResult, company string) {
	if job.Title == "" {
		job.Title = types.DefaultTitle
	}
	if job.Count == "" {
		job.Count = types.DefaultCount
	}
	if job.Location == "" {
		job.Location = types.DefaultLocation
	}
	if job.Company == "" {
		job.Company = company
	}
	if job.JobType == "" {
		job.JobType = types.DefaultJobType
	}
}

// Truncate limits free-text fields to a fixed byte budget. The cut backs
// up to a rune boundary so multi-byte characters are never split.
func Truncate(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	cut := budget
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// TruncateEllipsis behaves like Truncate but marks the cut with "...".
func TruncateEllipsis(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	return Truncate(s, budget) + "..."
}

// ExtractSalary pulls a salary range out of free-form posting content.
// Returns "" when no recognizable salary figure is present.
func ExtractSalary(content string) string {
	if content == "" {
		return ""
	}
	for _, pattern := range salaryPatterns {
		if match := pattern.FindString(content); match != "" {
			return match
		}
	}
	return ""
}

// JoinLocation builds a "City, State" location string, falling back to the
// country and then the documented default.
func JoinLocation(city, state, country string) string {
	switch {
	case city != "" && state != "":
		return city + ", " + state
	case country != "":
		return country
	default:
		return types.DefaultLocation
	}
}

// CleanCompany trims provider-echoed company names.
func CleanCompany(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	return name
}
