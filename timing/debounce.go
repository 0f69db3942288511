// Package timing provides the rate-control helpers used by the rag-lite
// web UI: debouncing (delay execution until a quiet period has elapsed
// since the last call) and throttling (run at most once per window,
// dropping excess calls).
//
// Both helpers exist as small stateful objects (Debouncer, Throttler)
// exposing a single Call operation, and as closure constructors (Debounce,
// Throttle) wrapping a target function.
//
// Example usage:
//
//	package main
//
//	import (
//		"fmt"
//		"time"
//
//		"github.com/wind-zhou5210/rag-lite/timing"
//	)
//
//	func main() {
//		search := timing.Debounce(func(query string) {
//			fmt.Println("searching for", query)
//		}, 300*time.Millisecond)
//
//		// Only the last query is executed, after the input goes quiet.
//		search("g")
//		search("go")
//		search("gol")
//
//		time.Sleep(time.Second)
//	}
package timing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// DefaultWait is the wait window applied when a non-positive duration is
// given to a debouncer or throttler.
const DefaultWait = 300 * time.Millisecond

// Logger defines the minimal logging interface required by this package.
// It matches log/slog.Logger's LogAttrs method, but allows plugging in custom loggers.
type Logger interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// config holds configuration options shared by the helpers.
type config struct {
	logger Logger
}

// Option defines a functional option for configuring a helper.
type Option func(*config)

// WithLogger sets a custom Logger used to report panics recovered from the
// target function. Defaults to slog.Default().
func WithLogger(l Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// Debouncer delays invocation of fn until wait has elapsed with no further
// Call. Only the most recent Call's argument is used. A Debouncer is safe
// for use from multiple goroutines.
type Debouncer[T any] struct {
	fn     func(T)
	wait   time.Duration
	logger Logger

	mu    sync.Mutex
	timer *time.Timer
	last  T
	gen   uint64
}

// NewDebouncer creates a Debouncer around fn. A non-positive wait falls
// back to DefaultWait.
func NewDebouncer[T any](fn func(T), wait time.Duration, opts ...Option) *Debouncer[T] {
	if wait <= 0 {
		wait = DefaultWait
	}

	c := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	return &Debouncer[T]{
		fn:     fn,
		wait:   wait,
		logger: c.logger,
	}
}

// Call records v as the latest argument, cancels any pending invocation,
// and schedules fn to run after the wait window passes with no further Call.
// The generation counter invalidates a timer that already fired but has not
// run yet, so rescheduling never lets fn run twice for one quiet period.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = v
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
	}

	gen := d.gen
	d.timer = time.AfterFunc(d.wait, func() { d.fire(gen) })
}

// Stop cancels the pending invocation, if any. Later Calls schedule again.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// fire runs fn with the latest argument on the timer goroutine. A stale
// generation means the schedule that started this timer was superseded by a
// later Call or Stop; the invocation is abandoned. A panic in fn is
// recovered and logged so it cannot take down the process.
func (d *Debouncer[T]) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	v := d.last
	d.timer = nil
	d.mu.Unlock()

	defer func() {
		if rec := recover(); rec != nil {
			d.logger.LogAttrs(context.Background(), slog.LevelError, "recovered from panic in debounced function",
				slog.String("error", fmt.Sprint(rec)),
			)
		}
	}()

	d.fn(v)
}

// Debounce wraps fn in a debouncing closure: each invocation resets the
// pending call, and fn eventually runs once per quiet period of length wait
// with the most recent argument.
//
// Example:
//
//	onResize := timing.Debounce(recalculateLayout, 300*time.Millisecond)
func Debounce[T any](fn func(T), wait time.Duration, opts ...Option) func(T) {
	d := NewDebouncer(fn, wait, opts...)
	return d.Call
}
