package timing

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttler invokes fn at most once per limit window. The first Call is
// accepted immediately; calls arriving during the cooldown are dropped,
// not queued, and their arguments discarded. A Throttler is safe for use
// from multiple goroutines.
type Throttler[T any] struct {
	fn      func(T)
	limiter *rate.Limiter
}

// NewThrottler creates a Throttler around fn. A non-positive limit falls
// back to DefaultWait.
func NewThrottler[T any](fn func(T), limit time.Duration) *Throttler[T] {
	if limit <= 0 {
		limit = DefaultWait
	}

	return &Throttler[T]{
		fn:      fn,
		limiter: rate.NewLimiter(rate.Every(limit), 1),
	}
}

// Call invokes fn with v if the cooldown window has elapsed since the last
// accepted call, and reports whether the call was accepted. Dropped calls
// do not run later.
func (t *Throttler[T]) Call(v T) bool {
	if !t.limiter.Allow() {
		return false
	}

	t.fn(v)
	return true
}

// Throttle wraps fn in a throttling closure: fn runs at most once per limit
// window, and the returned function reports whether each call was accepted.
//
// Example:
//
//	onScroll := timing.Throttle(updateScrollIndicator, 300*time.Millisecond)
func Throttle[T any](fn func(T), limit time.Duration) func(T) bool {
	t := NewThrottler(fn, limit)
	return t.Call
}
