package search

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testDebounce = 20 * time.Millisecond
	waitTimeout  = 2 * time.Second
	pollInterval = 5 * time.Millisecond
)

// recordingFetch counts calls and remembers the last query and locale
type recordingFetch struct {
	mu      sync.Mutex
	calls   int64
	queries []string
	locales []string
	results []string
	err     error
}

func (f *recordingFetch) fn(ctx context.Context, query, locale string) ([]string, error) {
	atomic.AddInt64(&f.calls, 1)
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.locales = append(f.locales, locale)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func (f *recordingFetch) callCount() int64 {
	return atomic.LoadInt64(&f.calls)
}

func (f *recordingFetch) lastQuery() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queries) == 0 {
		return ""
	}
	return f.queries[len(f.queries)-1]
}

func TestController_ShortQueryNeverFetches(t *testing.T) {
	fetch := &recordingFetch{results: []string{"x"}}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	for _, q := range []string{"", "a", " a ", "  "} {
		c.Submit(q)
	}

	time.Sleep(3 * testDebounce)

	state := c.Snapshot()
	assert.Empty(t, state.Results)
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
	assert.EqualValues(t, 0, fetch.callCount())
}

func TestController_ShortQueryClearsPriorResults(t *testing.T) {
	fetch := &recordingFetch{results: []string{"berlin"}}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("ber")
	require.Eventually(t, func() bool {
		return len(c.Snapshot().Results) == 1
	}, waitTimeout, pollInterval)

	c.Submit("b")
	state := c.Snapshot()
	assert.Empty(t, state.Results)
	assert.False(t, state.Loading)
	assert.EqualValues(t, 1, fetch.callCount())
}

func TestController_DebounceCollapsesRapidSubmits(t *testing.T) {
	fetch := &recordingFetch{results: []string{"hit"}}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("ba")
	c.Submit("bal")

	require.Eventually(t, func() bool {
		return len(c.Snapshot().Results) == 1
	}, waitTimeout, pollInterval)

	assert.EqualValues(t, 1, fetch.callCount())
	assert.Equal(t, "bal", fetch.lastQuery())
}

func TestController_RepeatedSameQueryCollapses(t *testing.T) {
	fetch := &recordingFetch{results: []string{"hit"}}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("rome")
	c.Submit("rome")
	c.Submit("rome")

	require.Eventually(t, func() bool {
		return len(c.Snapshot().Results) == 1
	}, waitTimeout, pollInterval)

	time.Sleep(2 * testDebounce)
	assert.EqualValues(t, 1, fetch.callCount())
}

func TestController_StaleResponseNeverOverwritesNewer(t *testing.T) {
	release := make(chan struct{})
	fetch := func(ctx context.Context, query, _ string) ([]string, error) {
		if query == "slow" {
			// Simulate a transport that cannot abort: block until released,
			// ignoring ctx entirely.
			<-release
			return []string{"slow result"}, nil
		}
		return []string{"fast result"}, nil
	}
	c := NewController(fetch, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("slow")
	require.Eventually(t, func() bool {
		return c.Snapshot().Loading
	}, waitTimeout, pollInterval)

	c.Submit("fast")
	require.Eventually(t, func() bool {
		s := c.Snapshot()
		return len(s.Results) == 1 && s.Results[0] == "fast result"
	}, waitTimeout, pollInterval)

	// Let the superseded request settle late: its result must be dropped
	close(release)
	time.Sleep(3 * testDebounce)

	state := c.Snapshot()
	require.Len(t, state.Results, 1)
	assert.Equal(t, "fast result", state.Results[0])
	assert.False(t, state.Loading)
	assert.Empty(t, state.Err)
}

func TestController_ErrorSurfacedAsMessage(t *testing.T) {
	fetch := &recordingFetch{err: errors.New("upstream exploded")}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("ber")
	require.Eventually(t, func() bool {
		return c.Snapshot().Err != ""
	}, waitTimeout, pollInterval)

	state := c.Snapshot()
	assert.Equal(t, "upstream exploded", state.Err)
	assert.Empty(t, state.Results)
	assert.False(t, state.Loading)
}

func TestController_FormatErrorOverride(t *testing.T) {
	fetch := &recordingFetch{err: errors.New("raw cause")}
	opts := Options{
		Debounce: testDebounce,
		FormatError: func(error) string {
			return "Failed to search airports"
		},
	}
	c := NewController(fetch.fn, nil, opts, nil)
	defer c.Close()

	c.Submit("ber")
	require.Eventually(t, func() bool {
		return c.Snapshot().Err != ""
	}, waitTimeout, pollInterval)

	assert.Equal(t, "Failed to search airports", c.Snapshot().Err)
}

func TestController_CancellationIsSilent(t *testing.T) {
	started := make(chan struct{}, 1)
	fetch := func(ctx context.Context, query, _ string) ([]string, error) {
		started <- struct{}{}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	c := NewController(fetch, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("ber")
	select {
	case <-started:
	case <-time.After(waitTimeout):
		t.Fatal("fetch never started")
	}

	c.Clear()
	time.Sleep(3 * testDebounce)

	state := c.Snapshot()
	assert.Empty(t, state.Err)
	assert.Empty(t, state.Results)
	assert.False(t, state.Loading)
}

func TestController_ClearIsIdempotent(t *testing.T) {
	fetch := &recordingFetch{results: []string{"x"}}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Clear()
	first := c.Snapshot()
	c.Clear()
	second := c.Snapshot()

	assert.Equal(t, first, second)
	assert.EqualValues(t, 0, fetch.callCount())
}

func TestController_ClearCancelsPendingTimer(t *testing.T) {
	fetch := &recordingFetch{results: []string{"x"}}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("ber")
	c.Clear()

	time.Sleep(3 * testDebounce)
	assert.EqualValues(t, 0, fetch.callCount())
}

func TestController_LocaleReadAtIssueTime(t *testing.T) {
	var current atomic.Value
	current.Store("en-US")

	fetch := &recordingFetch{results: []string{"x"}}
	opts := Options{
		Debounce: testDebounce,
		Locale:   func() string { return current.Load().(string) },
	}
	c := NewController(fetch.fn, nil, opts, nil)
	defer c.Close()

	c.Submit("ber")
	require.Eventually(t, func() bool {
		return fetch.callCount() == 1
	}, waitTimeout, pollInterval)

	current.Store("de-DE")
	c.Submit("mun")
	require.Eventually(t, func() bool {
		return fetch.callCount() == 2
	}, waitTimeout, pollInterval)

	fetch.mu.Lock()
	defer fetch.mu.Unlock()
	assert.Equal(t, []string{"en-US", "de-DE"}, fetch.locales)
}

func TestController_ClassifierApplied(t *testing.T) {
	fetch := &recordingFetch{results: []string{"b", "a"}}
	classify := func(items []string) []string {
		out := make([]string, len(items))
		copy(out, items)
		if len(out) == 2 && out[0] > out[1] {
			out[0], out[1] = out[1], out[0]
		}
		return out
	}
	c := NewController(fetch.fn, classify, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("ab")
	require.Eventually(t, func() bool {
		return len(c.Snapshot().Results) == 2
	}, waitTimeout, pollInterval)

	assert.Equal(t, []string{"a", "b"}, c.Snapshot().Results)
}

func TestController_StateChangesDeliveredInOrder(t *testing.T) {
	var mu sync.Mutex
	var states []State[string]

	fetch := &recordingFetch{results: []string{"x"}}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, func(s State[string]) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	})
	defer c.Close()

	c.Submit("ber")
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(states) >= 2
	}, waitTimeout, pollInterval)

	mu.Lock()
	defer mu.Unlock()
	// First notification marks loading, the last carries the results
	assert.True(t, states[0].Loading)
	last := states[len(states)-1]
	assert.False(t, last.Loading)
	assert.Equal(t, []string{"x"}, last.Results)
}

func TestController_SupersededSnapshotNeverDeliveredLate(t *testing.T) {
	var mu sync.Mutex
	var states []State[string]

	c := NewController[string](func(context.Context, string, string) ([]string, error) {
		return nil, nil
	}, nil, Options{Debounce: testDebounce}, func(s State[string]) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	})
	defer c.Close()

	// A newer snapshot wins the race to the callback; the older one must
	// then be dropped instead of arriving out of order.
	c.notify(State[string]{Query: "newer"}, 2)
	c.notify(State[string]{Query: "older", Loading: true}, 1)
	c.notify(State[string]{Query: "newest"}, 3)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, states, 2)
	assert.Equal(t, "newer", states[0].Query)
	assert.Equal(t, "newest", states[1].Query)
}

func TestController_TimerFireAfterClearIsNoop(t *testing.T) {
	fetch := &recordingFetch{results: []string{"x"}}
	c := NewController(fetch.fn, nil, Options{Debounce: testDebounce}, nil)
	defer c.Close()

	c.Submit("ber") // schedules a fire for the current generation
	c.Clear()       // supersedes it before the timer callback runs

	// The timer callback losing that race must abandon the request.
	c.fire("ber", 0)

	time.Sleep(3 * testDebounce)
	assert.EqualValues(t, 0, fetch.callCount())
	state := c.Snapshot()
	assert.Empty(t, state.Results)
	assert.False(t, state.Loading)
}
