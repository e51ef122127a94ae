// Package types provides type definitions for structured data used throughout the job search aggregator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Default values applied during normalization when a provider omits a field.
const (
	DefaultTitle    = "Unknown Position"
	DefaultLocation = "Location not specified"
	DefaultCount    = "1"
	DefaultJobType  = "Full-time"
)

// JobResult is the canonical job posting shape returned to callers.
// Title, Count, Location, SourceURL, Company, and ATSSource are always
// populated after normalization; the remaining fields are either set or
// entirely absent (empty string / nil slice, omitted from JSON).
type JobResult struct {
	Title       string   `json:"title"`
	Count       string   `json:"count"`
	Location    string   `json:"location"`
	SourceURL   string   `json:"sourceUrl"`
	Salary      string   `json:"salary,omitempty"`
	DatePosted  string   `json:"datePosted,omitempty"`
	JobType     string   `json:"jobType,omitempty"`
	Company     string   `json:"company"`
	ATSSource   string   `json:"atsSource"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Validate checks the required-field invariant for a normalized JobResult.
func (j *JobResult) Validate() error {
	switch {
	case j.Title == "":
		return fmt.Errorf("job result missing title")
	case j.Count == "":
		return fmt.Errorf("job result missing count")
	case j.Location == "":
		return fmt.Errorf("job result missing location")
	case j.SourceURL == "":
		return fmt.Errorf("job result missing sourceUrl")
	case j.Company == "":
		return fmt.Errorf("job result missing company")
	case j.ATSSource == "":
		return fmt.Errorf("job result missing atsSource")
	}
	return nil
}

// SearchResult is the aggregated output of a multi-source search.
type SearchResult struct {
	Success    bool        `json:"success"`
	Jobs       []JobResult `json:"jobs"`
	Sources    []string    `json:"sources"`
	TotalFound int         `json:"totalFound"`
	Errors     []string    `json:"errors,omitempty"`
}

// CompanySuggestion is one entry returned by the company directory lookup.
type CompanySuggestion struct {
	Name     string `json:"name"`
	Domain   string `json:"domain,omitempty"`
	Industry string `json:"industry,omitempty"`
	Size     string `json:"size,omitempty"`
	Location string `json:"location,omitempty"`
}
