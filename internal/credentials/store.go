// Package credentials provides the pluggable credential store consumed by
// credential-gated provider adapters. An absent credential marks a provider
// as unavailable; it is a skip signal, never an error.
package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Provider credential names. Adapters look themselves up under these keys.
const (
	KeyJSearch        = "jsearch"
	KeySerpAPI        = "serpapi"
	KeyDiffbot        = "diffbot"
	KeyApify          = "apify"
	KeyGoogleSearch   = "google_search"
	KeyGoogleSearchCX = "google_search_cx"
)

// envVars maps credential names to their environment variable fallbacks.
var envVars = map[string]string{
	KeyJSearch:        "JSEARCH_API_KEY",
	KeySerpAPI:        "SERPAPI_API_KEY",
	KeyDiffbot:        "DIFFBOT_TOKEN",
	KeyApify:          "APIFY_TOKEN",
	KeyGoogleSearch:   "GOOGLE_SEARCH_API_KEY",
	KeyGoogleSearchCX: "GOOGLE_SEARCH_CX",
}

// Store supplies per-provider API credentials.
type Store interface {
	// Get returns the credential for a provider, or "" when unset.
	Get(provider string) string
	// Set stores a credential for a provider.
	Set(provider, value string)
}

// EnvStore resolves credentials from environment variables. Set is a no-op
// beyond the process: values are kept in memory and shadow the environment.
type EnvStore struct {
	mu        sync.RWMutex
	overrides map[string]string
}

// NewEnvStore creates a Store backed by the process environment.
func NewEnvStore() *EnvStore {
	return &EnvStore{overrides: make(map[string]string)}
}

// Get implements Store.
func (s *EnvStore) Get(provider string) string {
	s.mu.RLock()
	if v, ok := s.overrides[provider]; ok {
		s.mu.RUnlock()
		return v
	}
	s.mu.RUnlock()

	if envVar, ok := envVars[provider]; ok {
		return os.Getenv(envVar)
	}
	return ""
}

// Set implements Store.
func (s *EnvStore) Set(provider, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[provider] = value
}

// FileStore persists credentials as a JSON object in a single file,
// mirroring the original client-side key storage. Reads fall back to the
// environment for keys missing from the file.
type FileStore struct {
	mu   sync.RWMutex
	path string
	keys map[string]string
}

// NewFileStore loads (or initializes) a file-backed credential store.
// A missing file is not an error; it is created on the first Set.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, keys: make(map[string]string)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read credential file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.keys); err != nil {
		return nil, fmt.Errorf("failed to parse credential file %s: %w", path, err)
	}
	return s, nil
}

// Get implements Store.
func (s *FileStore) Get(provider string) string {
	s.mu.RLock()
	v := s.keys[provider]
	s.mu.RUnlock()
	if v != "" {
		return v
	}
	if envVar, ok := envVars[provider]; ok {
		return os.Getenv(envVar)
	}
	return ""
}

// Set implements Store. The updated key set is written back immediately;
// a write failure keeps the in-memory value and is logged by the caller.
func (s *FileStore) Set(provider, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[provider] = value

	data, err := json.MarshalIndent(s.keys, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

// Static is a fixed in-memory store, convenient for tests and for callers
// that already resolved credentials elsewhere.
type Static map[string]string

// Get implements Store.
func (s Static) Get(provider string) string { return s[provider] }

// Set implements Store.
func (s Static) Set(provider, value string) { s[provider] = value }
