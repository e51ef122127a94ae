// Package providers contains the job listing source adapters. Every external
// API, ATS board, feed, and scraper that can return jobs for a company is
// wrapped behind the same Provider interface so the pipeline can fan out
// over any mix of them.
package providers

import (
	"context"

	"github.com/jonathan/jobsearch/internal/types"
)

// Result is the uniform outcome of a provider call. A provider never panics
// and never returns a Go error directly to the pipeline: failures are folded
// into the Result so that one source going down cannot abort its siblings.
//
// A Result with Success=false and Err=nil means the provider skipped itself,
// typically because its credential is not configured. Skips are not failures
// and are not reported to the caller.
type Result struct {
	Success bool
	Jobs    []types.JobResult
	Source  string
	Err     error
}

// Provider fetches job listings for a single company from one source.
type Provider interface {
	// Name identifies the provider in logs, results, and error reports.
	Name() string

	// Fetch retrieves jobs for the company. Implementations must honor ctx
	// cancellation and must channel all failures through Result.Err rather
	// than panicking.
	Fetch(ctx context.Context, company string) Result
}

// Skip builds the Result a provider returns when it cannot run, e.g. a
// missing API key. The error report stays empty for skips.
func Skip(name string) Result {
	return Result{Success: false, Source: name}
}

// Failure builds the Result for a provider call that ran and failed.
func Failure(name string, err error) Result {
	return Result{Success: false, Source: name, Err: err}
}

// OK builds a successful Result. Success is reported even for zero jobs;
// "queried fine, nothing posted" is not an error.
func OK(name string, jobs []types.JobResult) Result {
	return Result{Success: true, Jobs: jobs, Source: name}
}

// Registry holds the configured provider set grouped by pipeline role.
type Registry struct {
	// Primary is tried first and short-circuits everything else on success.
	Primary Provider

	// FreeBundle runs concurrently for well-known companies when the
	// primary comes up empty. No credentials required.
	FreeBundle []Provider

	// Credentialed are the paid fallbacks, tried when free sources fail.
	Credentialed []Provider

	// LastResort runs only when everything above produced nothing.
	LastResort []Provider
}

// All returns every registered provider in stage order.
func (r *Registry) All() []Provider {
	var out []Provider
	if r.Primary != nil {
		out = append(out, r.Primary)
	}
	out = append(out, r.FreeBundle...)
	out = append(out, r.Credentialed...)
	out = append(out, r.LastResort...)
	return out
}
