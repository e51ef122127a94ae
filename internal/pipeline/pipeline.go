// Package pipeline runs the staged provider fan-out that answers a company
// job search. Stages run in order and each stage's providers run
// concurrently; the first stage to produce a concrete, deduplicated job
// short-circuits everything after it. A provider failing or timing out never
// cancels its siblings; its error is carried in the final report instead.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/jobsearch/internal/companies"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/providers"
	"github.com/jonathan/jobsearch/internal/types"
)

// Mode selects how far the fan-out is willing to go.
type Mode string

const (
	// ModeAuto walks every stage, gating the free bundle to well-known
	// companies and stopping as soon as concrete jobs appear.
	ModeAuto Mode = "auto"

	// ModeQuick runs only the free stages: the primary aggregator and the
	// no-credential bundle.
	ModeQuick Mode = "quick"

	// ModeDeep always runs the free bundle and gives the scraping stage
	// its extended budget.
	ModeDeep Mode = "deep"
)

// Per-call ceilings for the credentialed fallbacks. Later fallbacks are
// slower services, so each gets a little more room.
var credentialedTimeouts = []time.Duration{5 * time.Second, 8 * time.Second, 10 * time.Second}

// Searcher orchestrates the provider registry for a single search.
type Searcher struct {
	Registry *providers.Registry

	// CareerPages serves career page suggestions outside the normal
	// fan-out. Defaults to the standard career page prober.
	CareerPages providers.Provider

	// KnownCompany gates the free bundle in auto mode. Defaults to the
	// major-company allow-list.
	KnownCompany func(string) bool
}

// New returns a Searcher over the given registry.
func New(registry *providers.Registry) *Searcher {
	return &Searcher{
		Registry:     registry,
		CareerPages:  &providers.CareerPage{},
		KnownCompany: companies.IsMajor,
	}
}

type stage struct {
	name      string
	providers []providers.Provider
	timeouts  []time.Duration
}

func (st stage) timeout(i int) time.Duration {
	if len(st.timeouts) == 0 {
		return 0
	}
	if i >= len(st.timeouts) {
		return st.timeouts[len(st.timeouts)-1]
	}
	return st.timeouts[i]
}

// Search runs the staged fan-out in auto mode.
func (s *Searcher) Search(ctx context.Context, company string) (*types.SearchResult, error) {
	return s.run(ctx, company, ModeAuto)
}

// QuickSearch runs only the free stages.
func (s *Searcher) QuickSearch(ctx context.Context, company string) (*types.SearchResult, error) {
	return s.run(ctx, company, ModeQuick)
}

// DeepSearch runs every stage with the free bundle always on.
func (s *Searcher) DeepSearch(ctx context.Context, company string) (*types.SearchResult, error) {
	return s.run(ctx, company, ModeDeep)
}

// SearchMode dispatches on a mode string from config or CLI flags.
func (s *Searcher) SearchMode(ctx context.Context, company string, mode Mode) (*types.SearchResult, error) {
	return s.run(ctx, company, mode)
}

func (s *Searcher) run(ctx context.Context, company string, mode Mode) (*types.SearchResult, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, fmt.Errorf("company name is required")
	}

	runID := uuid.NewString()[:8]
	log.Printf("[Pipeline] %s: searching %q (mode=%s)", runID, company, mode)

	var (
		merged  []types.JobResult
		errs    []string
		sources = make(map[string]struct{})
	)
	for _, st := range s.stages(company, mode) {
		if len(st.providers) == 0 {
			continue
		}
		if ctx.Err() != nil {
			errs = append(errs, fmt.Sprintf("search aborted: %v", ctx.Err()))
			break
		}
		log.Printf("[Pipeline] %s: stage %s (%d providers)", runID, st.name, len(st.providers))

		for _, result := range s.runStage(ctx, st, company) {
			if result.Err != nil {
				log.Printf("[Pipeline] %s: %s failed: %v", runID, result.Source, result.Err)
				errs = append(errs, fmt.Sprintf("%s: %v", result.Source, result.Err))
				continue
			}
			if !result.Success {
				log.Printf("[Pipeline] %s: %s skipped", runID, result.Source)
				continue
			}
			log.Printf("[Pipeline] %s: %s returned %d jobs", runID, result.Source, len(result.Jobs))

			// A provider only counts as a source when it grows the
			// deduplicated concrete set; generic-only and
			// duplicate-only contributions stay out of the report.
			grown := normalize.Dedupe(
				append(merged, normalize.FilterGeneric(result.Jobs)...),
				normalize.DedupeOptions{},
			)
			if len(grown) > len(merged) {
				sources[result.Source] = struct{}{}
			}
			merged = grown
		}

		if len(merged) > 0 {
			log.Printf("[Pipeline] %s: done after stage %s with %d jobs", runID, st.name, len(merged))
			return s.report(merged, sources, errs), nil
		}
	}

	log.Printf("[Pipeline] %s: no concrete jobs found", runID)
	return s.report(nil, sources, errs), nil
}

// SuggestCareerPages returns career page pointers for the company,
// including the generic "check their careers site" results that the main
// search filters out.
func (s *Searcher) SuggestCareerPages(ctx context.Context, company string) ([]types.JobResult, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, fmt.Errorf("company name is required")
	}
	prober := s.CareerPages
	if prober == nil {
		prober = &providers.CareerPage{}
	}
	result := prober.Fetch(ctx, company)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Jobs, nil
}

func (s *Searcher) stages(company string, mode Mode) []stage {
	r := s.Registry
	known := s.KnownCompany
	if known == nil {
		known = companies.IsMajor
	}

	var primary []providers.Provider
	if r.Primary != nil {
		primary = []providers.Provider{r.Primary}
	}

	// In auto mode the free bundle only runs early for well-known
	// companies; for everyone else it is deferred to the last-resort
	// stage so the cheap sources still get a turn before giving up.
	freeBundle := r.FreeBundle
	var deferred []providers.Provider
	if mode == ModeAuto && !known(company) {
		deferred = freeBundle
		freeBundle = nil
	}

	stages := []stage{
		{name: "primary", providers: primary},
		{name: "free-bundle", providers: freeBundle},
	}
	if mode == ModeQuick {
		return stages
	}

	lastResort := make([]providers.Provider, 0, len(deferred)+len(r.LastResort))
	lastResort = append(lastResort, deferred...)
	lastResort = append(lastResort, r.LastResort...)
	return append(stages,
		stage{name: "credentialed", providers: r.Credentialed, timeouts: credentialedTimeouts},
		stage{name: "last-resort", providers: lastResort},
	)
}

// runStage fans out over the stage's providers and waits for all of them.
func (s *Searcher) runStage(ctx context.Context, st stage, company string) []providers.Result {
	results := make([]providers.Result, len(st.providers))
	var wg sync.WaitGroup
	for i, p := range st.providers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = providers.Failure(p.Name(), fmt.Errorf("provider panicked: %v", r))
				}
			}()

			pctx := ctx
			if t := st.timeout(i); t > 0 {
				var cancel context.CancelFunc
				pctx, cancel = context.WithTimeout(ctx, t)
				defer cancel()
			}
			results[i] = p.Fetch(pctx, company)
		}()
	}
	wg.Wait()
	return results
}

func (s *Searcher) report(jobs []types.JobResult, sources map[string]struct{}, errs []string) *types.SearchResult {
	// jobs must serialize as [] rather than null when nothing was found.
	if jobs == nil {
		jobs = []types.JobResult{}
	}
	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return &types.SearchResult{
		Success:    len(jobs) > 0,
		Jobs:       jobs,
		Sources:    names,
		TotalFound: len(jobs),
		Errors:     errs,
	}
}
