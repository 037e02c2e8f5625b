// Package search implements the debounced, cancellable autocomplete core
// shared by the airport, hotel destination and car location search boxes.
//
// A Controller converts a rapid stream of query changes into at most one
// settled network call per pause in typing, and guarantees that only the
// most recently submitted query's result is ever surfaced: a slow response
// belonging to a superseded request is dropped, never applied.
package search

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultDebounce is the pause required before a query is sent upstream
	DefaultDebounce = 300 * time.Millisecond
	// DefaultMinQueryLength gates queries too short to be useful
	DefaultMinQueryLength = 2
)

// FetchFunc issues the upstream request for a query. The locale is resolved
// at issue time and passed explicitly; implementations must honor ctx
// cancellation, or at least return promptly once it fires.
type FetchFunc[T any] func(ctx context.Context, query, locale string) ([]T, error)

// ClassifyFunc post-processes a raw result list into display order.
// It must not mutate its input.
type ClassifyFunc[T any] func(items []T) []T

// State is a snapshot of one search field
type State[T any] struct {
	Query   string
	Results []T
	Loading bool
	Err     string
}

// Options tune a Controller instance
type Options struct {
	// Debounce is the typing pause before a request fires. Zero means DefaultDebounce.
	Debounce time.Duration
	// MinQueryLength is the minimum trimmed query length. Zero means DefaultMinQueryLength.
	MinQueryLength int
	// Locale returns the locale id attached to each request. May be nil.
	Locale func() string
	// FormatError converts a request failure into the user-facing message.
	// Nil falls back to err.Error().
	FormatError func(error) string
}

// Controller owns the request lifecycle of one logical search field.
// All methods are safe for concurrent use. State changes reach the onChange
// callback in application order: a snapshot superseded before delivery is
// dropped, never delivered after a newer one.
type Controller[T any] struct {
	fetch    FetchFunc[T]
	classify ClassifyFunc[T]
	opts     Options
	onChange func(State[T])

	mu     sync.Mutex
	state  State[T]
	timer  *time.Timer
	cancel context.CancelFunc
	gen    uint64
	seq    uint64
	closed bool

	// notifyMu serializes onChange delivery; delivered is the seq of the
	// newest snapshot handed to the callback.
	notifyMu  sync.Mutex
	delivered uint64
}

// NewController creates a controller for one search field.
// onChange may be nil when callers poll via Snapshot instead.
func NewController[T any](fetch FetchFunc[T], classify ClassifyFunc[T], opts Options, onChange func(State[T])) *Controller[T] {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = DefaultMinQueryLength
	}
	return &Controller[T]{
		fetch:    fetch,
		classify: classify,
		opts:     opts,
		onChange: onChange,
	}
}

// Submit registers a query change. Queries shorter than the minimum length
// clear the field state without any network call; anything else (re)starts
// the debounce timer. Repeated submissions of the same text before the
// timer fires collapse to a single request.
func (c *Controller[T]) Submit(text string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	trimmed := strings.TrimSpace(text)
	c.state.Query = text

	if len([]rune(trimmed)) < c.opts.MinQueryLength {
		c.resetLocked()
		snapshot, seq := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snapshot, seq)
		return
	}

	if c.timer != nil {
		c.timer.Stop()
	}
	scheduled := c.gen
	c.timer = time.AfterFunc(c.opts.Debounce, func() {
		c.fire(trimmed, scheduled)
	})
	c.mu.Unlock()
}

// Clear empties results and error, cancels any pending timer and in-flight
// request. It never issues a network call and is idempotent.
func (c *Controller[T]) Clear() {
	c.mu.Lock()
	c.state.Query = ""
	c.resetLocked()
	snapshot, seq := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snapshot, seq)
}

// Close permanently shuts the controller down. Subsequent Submit calls are no-ops.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	c.closed = true
	c.resetLocked()
	c.mu.Unlock()
}

// Snapshot returns the current field state
func (c *Controller[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// resetLocked cancels the pending timer and in-flight request and empties
// results and error. Callers must hold c.mu.
func (c *Controller[T]) resetLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	c.state.Results = nil
	c.state.Loading = false
	c.state.Err = ""
}

// snapshotLocked stamps the current state with the next delivery sequence
// number. Callers must hold c.mu.
func (c *Controller[T]) snapshotLocked() (State[T], uint64) {
	c.seq++
	return c.state, c.seq
}

// fire runs when the debounce timer elapses: it supersedes any in-flight
// request and issues a new one for query. A Clear or short-query Submit
// that beat the timer callback to the lock bumps gen past scheduled, in
// which case the fire is abandoned.
func (c *Controller[T]) fire(query string, scheduled uint64) {
	c.mu.Lock()
	if c.closed || c.gen != scheduled {
		c.mu.Unlock()
		return
	}

	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.gen++
	gen := c.gen

	locale := ""
	if c.opts.Locale != nil {
		locale = c.opts.Locale()
	}

	c.state.Loading = true
	c.state.Err = ""
	snapshot, seq := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snapshot, seq)

	go func() {
		items, err := c.fetch(ctx, query, locale)
		cancel()

		c.mu.Lock()
		// A later Submit or Clear has superseded this request: drop the
		// result silently, whatever it was.
		if c.gen != gen || c.closed {
			c.mu.Unlock()
			return
		}

		if err != nil {
			if errors.Is(err, context.Canceled) {
				c.mu.Unlock()
				return
			}
			c.state.Results = nil
			c.state.Loading = false
			c.state.Err = c.formatError(err)
		} else {
			if c.classify != nil {
				items = c.classify(items)
			}
			c.state.Results = items
			c.state.Loading = false
			c.state.Err = ""
		}
		snapshot, seq := c.snapshotLocked()
		c.mu.Unlock()
		c.notify(snapshot, seq)
	}()
}

func (c *Controller[T]) formatError(err error) string {
	if c.opts.FormatError != nil {
		return c.opts.FormatError(err)
	}
	return err.Error()
}

// notify delivers a snapshot to the onChange callback unless a newer
// snapshot has already been delivered.
func (c *Controller[T]) notify(s State[T], seq uint64) {
	if c.onChange == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	if seq <= c.delivered {
		return
	}
	c.delivered = seq
	c.onChange(s)
}
