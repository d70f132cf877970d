package openai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/modelscout/cli/internal/config"
	apperrors "github.com/modelscout/cli/internal/errors"
)

// FetchState is the lifecycle of one source's cached model list.
type FetchState int

const (
	// StateEmpty means no fetch has run for the source yet.
	StateEmpty FetchState = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateReady means the cache holds a successful result.
	StateReady
	// StateError means the last fetch failed.
	StateError
)

func (s FetchState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "empty"
	}
}

type lister interface {
	ListModels(ctx context.Context) ([]ModelDescriptor, error)
}

type cacheEntry struct {
	state     FetchState
	models    []ModelDescriptor
	err       error
	fetchedAt time.Time
}

// Fetcher serves model lists from a per-source cache. At most one
// request is outstanding per source; concurrent callers share the
// in-flight result. Errors are not cached: the next call retries, which
// is how the manual re-fetch surfaces to the user.
type Fetcher struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	clients map[string]lister
	group   singleflight.Group
	ttl     time.Duration

	// newClient is swapped out in tests.
	newClient func(src config.Source) lister
}

// NewFetcher creates a fetcher whose successful results stay fresh for ttl.
func NewFetcher(ttl time.Duration, debug bool) *Fetcher {
	return &Fetcher{
		entries: make(map[string]*cacheEntry),
		clients: make(map[string]lister),
		ttl:     ttl,
		newClient: func(src config.Source) lister {
			return NewClient(src, debug)
		},
	}
}

// client returns the cached client for a source, creating it on first
// use. Reusing one client per source keeps its rate limiter effective
// across Refresh cycles.
func (f *Fetcher) client(src config.Source) lister {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[src.ID]; ok {
		return c
	}
	c := f.newClient(src)
	f.clients[src.ID] = c
	return c
}

// Models returns the model list for a source, fetching it if the cache
// is empty, stale, or errored. Sources without a plausible API key are
// rejected before any network traffic.
func (f *Fetcher) Models(ctx context.Context, src config.Source) ([]ModelDescriptor, error) {
	if !src.HasPlausibleKey() {
		return nil, apperrors.AuthErrorWithContext(
			fmt.Errorf("source %q has no usable API key", src.DisplayName()),
			"Set the key with 'modelscout source add' or the MODELSCOUT_API_KEY environment variable.",
		)
	}

	f.mu.Lock()
	if e, ok := f.entries[src.ID]; ok && e.state == StateReady && time.Since(e.fetchedAt) < f.ttl {
		models := e.models
		f.mu.Unlock()
		return models, nil
	}
	f.mu.Unlock()

	v, err, _ := f.group.Do(src.ID, func() (interface{}, error) {
		f.setEntry(src.ID, &cacheEntry{state: StateLoading})

		models, err := f.client(src).ListModels(ctx)
		if err != nil {
			f.setEntry(src.ID, &cacheEntry{state: StateError, err: err})
			return nil, err
		}

		f.setEntry(src.ID, &cacheEntry{
			state:     StateReady,
			models:    models,
			fetchedAt: time.Now(),
		})
		return models, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]ModelDescriptor), nil
}

// State reports the cache state for a source.
func (f *Fetcher) State(sourceID string) FetchState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[sourceID]; ok {
		return e.state
	}
	return StateEmpty
}

// Err returns the error from the last failed fetch, if the source is in
// the error state.
func (f *Fetcher) Err(sourceID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.entries[sourceID]; ok && e.state == StateError {
		return e.err
	}
	return nil
}

// Refresh drops the cached entry so the next Models call hits the
// provider again.
func (f *Fetcher) Refresh(sourceID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, sourceID)
}

func (f *Fetcher) setEntry(sourceID string, e *cacheEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[sourceID] = e
}
