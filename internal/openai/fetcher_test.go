package openai

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelscout/cli/internal/config"
	apperrors "github.com/modelscout/cli/internal/errors"
)

type fakeLister struct {
	calls  atomic.Int64
	models []ModelDescriptor
	err    error
	delay  time.Duration
}

func (f *fakeLister) ListModels(ctx context.Context) ([]ModelDescriptor, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.models, f.err
}

func newTestFetcher(ttl time.Duration, fake *fakeLister) *Fetcher {
	f := NewFetcher(ttl, false)
	f.newClient = func(src config.Source) lister { return fake }
	return f
}

func TestFetcherCachesSuccess(t *testing.T) {
	fake := &fakeLister{models: []ModelDescriptor{{ID: "gpt-4", Created: 1}}}
	f := newTestFetcher(time.Minute, fake)
	src := config.Source{ID: "src-1", APIKey: "sk-test"}

	for i := 0; i < 3; i++ {
		models, err := f.Models(context.Background(), src)
		require.NoError(t, err)
		require.Len(t, models, 1)
	}

	assert.EqualValues(t, 1, fake.calls.Load(), "fresh cache should serve repeat calls")
	assert.Equal(t, StateReady, f.State("src-1"))
}

func TestFetcherRejectsImplausibleKey(t *testing.T) {
	fake := &fakeLister{}
	f := newTestFetcher(time.Minute, fake)

	_, err := f.Models(context.Background(), config.Source{ID: "src-1", APIKey: "  "})
	require.Error(t, err)

	var cliErr *apperrors.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, apperrors.ErrorTypeAuth, cliErr.Type)
	assert.EqualValues(t, 0, fake.calls.Load(), "no network call without a plausible key")
	assert.Equal(t, StateEmpty, f.State("src-1"))
}

func TestFetcherErrorStateRetriesOnNextCall(t *testing.T) {
	fake := &fakeLister{err: errors.New("boom")}
	f := newTestFetcher(time.Minute, fake)
	src := config.Source{ID: "src-1", APIKey: "sk-test"}

	_, err := f.Models(context.Background(), src)
	require.Error(t, err)
	assert.Equal(t, StateError, f.State("src-1"))
	assert.EqualError(t, f.Err("src-1"), "boom")

	// Errors are not cached; the next call hits the provider again.
	fake.err = nil
	fake.models = []ModelDescriptor{{ID: "gpt-4"}}
	models, err := f.Models(context.Background(), src)
	require.NoError(t, err)
	assert.Len(t, models, 1)
	assert.EqualValues(t, 2, fake.calls.Load())
	assert.Equal(t, StateReady, f.State("src-1"))
	assert.NoError(t, f.Err("src-1"))
}

func TestFetcherRefreshInvalidates(t *testing.T) {
	fake := &fakeLister{models: []ModelDescriptor{{ID: "gpt-4"}}}
	f := newTestFetcher(time.Minute, fake)
	src := config.Source{ID: "src-1", APIKey: "sk-test"}

	_, err := f.Models(context.Background(), src)
	require.NoError(t, err)

	f.Refresh("src-1")
	assert.Equal(t, StateEmpty, f.State("src-1"))

	_, err = f.Models(context.Background(), src)
	require.NoError(t, err)
	assert.EqualValues(t, 2, fake.calls.Load())
}

func TestFetcherReusesClientAcrossRefreshCycles(t *testing.T) {
	fake := &fakeLister{models: []ModelDescriptor{{ID: "gpt-4"}}}
	f := NewFetcher(time.Minute, false)

	var created atomic.Int64
	f.newClient = func(src config.Source) lister {
		created.Add(1)
		return fake
	}
	src := config.Source{ID: "src-1", APIKey: "sk-test"}

	// Repeated refresh-then-fetch cycles must go through one client per
	// source so its rate limiter spans all of them.
	for i := 0; i < 5; i++ {
		f.Refresh(src.ID)
		_, err := f.Models(context.Background(), src)
		require.NoError(t, err)
	}

	assert.EqualValues(t, 1, created.Load(), "one client per source, reused across refreshes")
	assert.EqualValues(t, 5, fake.calls.Load())
}

func TestFetcherTTLExpiry(t *testing.T) {
	fake := &fakeLister{models: []ModelDescriptor{{ID: "gpt-4"}}}
	f := newTestFetcher(10*time.Millisecond, fake)
	src := config.Source{ID: "src-1", APIKey: "sk-test"}

	_, err := f.Models(context.Background(), src)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = f.Models(context.Background(), src)
	require.NoError(t, err)
	assert.EqualValues(t, 2, fake.calls.Load(), "stale entry should refetch")
}

func TestFetcherSingleFlight(t *testing.T) {
	fake := &fakeLister{models: []ModelDescriptor{{ID: "gpt-4"}}, delay: 50 * time.Millisecond}
	f := newTestFetcher(time.Minute, fake)
	src := config.Source{ID: "src-1", APIKey: "sk-test"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			models, err := f.Models(context.Background(), src)
			assert.NoError(t, err)
			assert.Len(t, models, 1)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, fake.calls.Load(), "concurrent callers share one in-flight request")
}

func TestFetcherDistinctSourcesDoNotShareCache(t *testing.T) {
	fake := &fakeLister{models: []ModelDescriptor{{ID: "gpt-4"}}}
	f := newTestFetcher(time.Minute, fake)

	_, err := f.Models(context.Background(), config.Source{ID: "a", APIKey: "sk-a"})
	require.NoError(t, err)
	_, err = f.Models(context.Background(), config.Source{ID: "b", APIKey: "sk-b"})
	require.NoError(t, err)

	assert.EqualValues(t, 2, fake.calls.Load())
}
