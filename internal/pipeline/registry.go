package pipeline

import (
	"time"

	"github.com/jonathan/jobsearch/internal/credentials"
	"github.com/jonathan/jobsearch/internal/providers"
)

// RegistryOptions tunes the default provider registry.
type RegistryOptions struct {
	// Deep gives the scraping stage its extended budget and actor set.
	Deep bool

	// FetchTimeout bounds each HTTP call made by the free providers.
	// Zero means the fetch default.
	FetchTimeout time.Duration
}

// DefaultRegistry wires the standard provider set against a credential
// store. Providers with missing credentials stay registered; they skip
// themselves at fetch time.
func DefaultRegistry(creds credentials.Store, opts RegistryOptions) *providers.Registry {
	t := opts.FetchTimeout
	return &providers.Registry{
		Primary: &providers.JSearch{Credentials: creds, Timeout: t},
		FreeBundle: []providers.Provider{
			&providers.Greenhouse{Timeout: t},
			&providers.Lever{Timeout: t},
			&providers.Workable{Timeout: t},
			&providers.Ashby{Timeout: t},
			&providers.CareerPage{Timeout: t},
			&providers.RSS{Timeout: t},
			&providers.Arbeitnow{Timeout: t},
			&providers.Jobicy{Timeout: t},
		},
		Credentialed: []providers.Provider{
			&providers.SerpAPI{Credentials: creds},
			&providers.Diffbot{Credentials: creds, Timeout: t},
			&providers.Apify{Credentials: creds, Label: "apify-linkedin", Actors: providers.LinkedInActor()},
		},
		LastResort: []providers.Provider{
			&providers.Apify{Credentials: creds, Deep: opts.Deep},
			&providers.GoogleSearch{Credentials: creds},
		},
	}
}
