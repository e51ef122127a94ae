package providers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobsearch/internal/credentials"
	"github.com/jonathan/jobsearch/internal/fetch"
	"github.com/jonathan/jobsearch/internal/normalize"
	"github.com/jonathan/jobsearch/internal/types"
)

const (
	apifyQuickName = "apify-quick"
	apifyDeepName  = "apify-deep"

	apifyQuickBudget  = 30 * time.Second
	apifyDeepBudget   = 90 * time.Second
	apifyPollInterval = 3 * time.Second
	apifyBatchSize    = 2
	apifyBatchDelay   = 2 * time.Second
)

// Actor describes one Apify actor: how to start it for a company and how to
// map its dataset items back into job results.
type Actor struct {
	// ID is the actor identifier in Apify URL form, e.g.
	// "bebity~linkedin-jobs-scraper".
	ID string

	// Label is the source label attached to jobs from this actor.
	Label string

	// Prebuilt marks actors with a maintained build that starts fast
	// enough for the quick budget. Non-prebuilt actors only run in deep
	// searches.
	Prebuilt bool

	Input func(company string) map[string]any
	Map   func(item map[string]any, company string) (types.JobResult, bool)
}

// Apify runs scraping actors on the Apify platform and polls their runs to
// completion. Quick mode sticks to prebuilt actors under a 30 second budget;
// deep mode runs everything under 90 seconds. Actors start in batches of two
// with a short delay between batches to stay under account concurrency
// limits.
type Apify struct {
	Credentials credentials.Store
	Deep        bool

	// BaseURL overrides the Apify API endpoint in tests.
	BaseURL string

	// PollInterval and BatchDelay override the poll cadence in tests.
	PollInterval time.Duration
	BatchDelay   time.Duration

	// Actors overrides the default actor set; used for the single-actor
	// credentialed fallback and in tests.
	Actors []Actor

	// Label overrides the provider name for single-actor instances.
	Label string
}

type apifyRunEnvelope struct {
	Data struct {
		ID               string `json:"id"`
		Status           string `json:"status"`
		DefaultDatasetID string `json:"defaultDatasetId"`
	} `json:"data"`
}

func (p *Apify) Name() string {
	if p.Label != "" {
		return p.Label
	}
	if p.Deep {
		return apifyDeepName
	}
	return apifyQuickName
}

func (p *Apify) Fetch(ctx context.Context, company string) Result {
	token := p.Credentials.Get(credentials.KeyApify)
	if token == "" {
		return Skip(p.Name())
	}

	budget := apifyQuickBudget
	if p.Deep {
		budget = apifyDeepBudget
	}
	ctx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	actors := p.Actors
	if actors == nil {
		actors = DefaultActors()
	}
	var selected []Actor
	for _, a := range actors {
		if p.Deep || a.Prebuilt {
			selected = append(selected, a)
		}
	}
	if len(selected) == 0 {
		return OK(p.Name(), nil)
	}

	batchDelay := p.BatchDelay
	if batchDelay == 0 {
		batchDelay = apifyBatchDelay
	}

	var (
		mu      sync.Mutex
		jobs    []types.JobResult
		lastErr error
	)
	for start := 0; start < len(selected); start += apifyBatchSize {
		if ctx.Err() != nil {
			break
		}
		end := start + apifyBatchSize
		if end > len(selected) {
			end = len(selected)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, actor := range selected[start:end] {
			g.Go(func() error {
				found, err := p.runActor(gctx, actor, token, company)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					lastErr = err
					return nil
				}
				jobs = append(jobs, found...)
				return nil
			})
		}
		_ = g.Wait()

		if end < len(selected) {
			select {
			case <-ctx.Done():
			case <-time.After(batchDelay):
			}
		}
	}

	// Actors overlap heavily across boards; collapse shared postings but
	// keep same-title jobs from different companies apart.
	jobs = normalize.Dedupe(jobs, normalize.DedupeOptions{IncludeCompany: true})
	if len(jobs) == 0 && lastErr != nil {
		return Failure(p.Name(), lastErr)
	}
	return OK(p.Name(), jobs)
}

func (p *Apify) runActor(ctx context.Context, actor Actor, token, company string) ([]types.JobResult, error) {
	base := p.BaseURL
	if base == "" {
		base = "https://api.apify.com"
	}
	opts := &fetch.Options{Timeout: fetch.DefaultTimeout}

	var started apifyRunEnvelope
	startURL := fmt.Sprintf("%s/v2/acts/%s/runs?token=%s", base, actor.ID, token)
	if err := fetch.PostJSON(ctx, startURL, actor.Input(company), opts, &started); err != nil {
		return nil, err
	}
	if started.Data.ID == "" {
		return nil, &fetch.Error{URL: startURL, Message: "actor run did not return an id"}
	}

	run, err := p.pollRun(ctx, base, started.Data.ID, token)
	if err != nil {
		return nil, err
	}
	if run.Data.Status != "SUCCEEDED" {
		return nil, fmt.Errorf("actor %s finished with status %s", actor.ID, run.Data.Status)
	}

	var items []map[string]any
	itemsURL := fmt.Sprintf("%s/v2/datasets/%s/items?token=%s", base, run.Data.DefaultDatasetID, token)
	if err := fetch.JSON(ctx, itemsURL, opts, &items); err != nil {
		return nil, err
	}

	var jobs []types.JobResult
	for _, item := range items {
		if job, ok := actor.Map(item, company); ok {
			normalize.ApplyDefaults(&job, company)
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (p *Apify) pollRun(ctx context.Context, base, runID, token string) (*apifyRunEnvelope, error) {
	interval := p.PollInterval
	if interval == 0 {
		interval = apifyPollInterval
	}
	opts := &fetch.Options{Timeout: fetch.DefaultTimeout}
	statusURL := fmt.Sprintf("%s/v2/actor-runs/%s?token=%s", base, runID, token)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}

		var run apifyRunEnvelope
		if err := fetch.JSON(ctx, statusURL, opts, &run); err != nil {
			return nil, err
		}
		switch run.Data.Status {
		case "SUCCEEDED", "FAILED", "ABORTED", "TIMED-OUT":
			return &run, nil
		}
	}
}
