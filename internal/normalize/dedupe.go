package normalize

import (
	"strings"

	"github.com/jonathan/jobsearch/internal/types"
)

// DedupeOptions controls how the dedup key is composed.
type DedupeOptions struct {
	// IncludeCompany adds the company name to the key so identically titled
	// jobs at different companies are kept apart. The staged search leaves
	// this off to match the merged-list behavior; provider-internal merges
	// that mix companies (e.g. actor search) turn it on.
	IncludeCompany bool
}

// Dedupe removes postings that share a key built from lowercased, trimmed
// title and location (plus company when configured). The first occurrence in
// input order wins, so upstream ordering decides which provider's version of
// a duplicate survives. Idempotent.
func Dedupe(jobs []types.JobResult, opts DedupeOptions) []types.JobResult {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]types.JobResult, 0, len(jobs))
	for _, job := range jobs {
		key := dedupeKey(job, opts)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, job)
	}
	return out
}

func dedupeKey(job types.JobResult, opts DedupeOptions) string {
	parts := []string{strings.ToLower(strings.TrimSpace(job.Title))}
	if opts.IncludeCompany {
		parts = append(parts, strings.ToLower(strings.TrimSpace(job.Company)))
	}
	parts = append(parts, strings.ToLower(strings.TrimSpace(job.Location)))
	return strings.Join(parts, "-")
}
