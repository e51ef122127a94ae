package normalize

import (
	"strings"

	"github.com/jonathan/jobsearch/internal/types"
)

// genericTitlePhrases flag placeholder postings that point at a career page
// rather than an identifiable opening.
var genericTitlePhrases = []string{
	"join us",
	"careers at",
	"various open positions",
	"check career page",
	"career opportunity",
	"multiple positions",
}

// genericExactTitles are matched whole rather than as substrings.
var genericExactTitles = map[string]struct{}{
	"position available": {},
	"job opening":        {},
	"untitled position":  {},
}

// genericCounts are non-numeric opening counts used by aggregate postings.
var genericCounts = map[string]struct{}{
	"multiple": {},
	"various":  {},
	"unknown":  {},
}

// IsGeneric reports whether a posting is a placeholder or aggregate entry
// with no actionable opening behind it.
func IsGeneric(job types.JobResult) bool {
	title := strings.ToLower(strings.TrimSpace(job.Title))

	if _, ok := genericExactTitles[title]; ok {
		return true
	}
	for _, phrase := range genericTitlePhrases {
		if strings.Contains(title, phrase) {
			return true
		}
	}

	count := strings.ToLower(strings.TrimSpace(job.Count))
	_, ok := genericCounts[count]
	return ok
}

// FilterGeneric removes generic postings from a list, preserving order.
// Generic postings are still available to callers that want them as
// last-resort suggestions; see the pipeline's SuggestCareerPages.
func FilterGeneric(jobs []types.JobResult) []types.JobResult {
	out := make([]types.JobResult, 0, len(jobs))
	for _, job := range jobs {
		if !IsGeneric(job) {
			out = append(out, job)
		}
	}
	return out
}
