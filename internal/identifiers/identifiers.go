// Package identifiers derives candidate ATS board slugs from a free-text company name.
package identifiers

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9]`)
	suffixRe     = regexp.MustCompile(`[-_]?(inc|corp|ltd|llc|company|co)$`)
)

// Generate returns an ordered, deduplicated list of candidate identifiers
// for a company name. More specific forms come first: adapters try each in
// order and accept the first that yields a non-empty 2xx response, so a
// cleaned exact match must precede suffix-stripped variants.
//
// The list always contains at least the lowercased, trimmed input.
func Generate(companyName string) []string {
	clean := strings.ToLower(strings.TrimSpace(companyName))

	candidates := []string{
		clean,
		whitespaceRe.ReplaceAllString(clean, ""),
		whitespaceRe.ReplaceAllString(clean, "-"),
		whitespaceRe.ReplaceAllString(clean, "_"),
		nonAlnumRe.ReplaceAllString(clean, ""),
		nonAlnumRe.ReplaceAllString(clean, "-"),
	}

	// Suffix-stripped variants of every base form, appended after the
	// originals so exact names are tried first.
	stripped := make([]string, 0, len(candidates))
	for _, id := range candidates {
		stripped = append(stripped, stripSuffixes(id))
	}
	candidates = append(candidates, stripped...)

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, id := range candidates {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	if len(out) == 0 {
		out = append(out, clean)
	}
	return out
}

// stripSuffixes removes trailing legal suffixes until none remain, so
// "examplecoinc" reduces through "exampleco" to "example".
func stripSuffixes(id string) string {
	for {
		trimmed := strings.TrimRight(id, "-_., ")
		trimmed = suffixRe.ReplaceAllString(trimmed, "")
		if trimmed == id {
			return id
		}
		id = trimmed
	}
}
