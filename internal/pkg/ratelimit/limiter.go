package ratelimit

import (
	"sync"
	"time"

	"franchise-store/internal/pkg/clock"
)

// Limiter is a strict fixed-window attempt counter keyed by client
// identity (IP, form-session id). O(1) memory per key and O(1) per check;
// the accepted trade-off is that up to 2×maxAttempts requests can land
// across a window boundary.
type Limiter struct {
	mu          sync.Mutex
	entries     map[string]*entry
	clock       clock.Clock
	maxAttempts int
	window      time.Duration
}

type entry struct {
	count           int
	windowStartedAt time.Time
}

func NewLimiter(clk clock.Clock, maxAttempts int, window time.Duration) *Limiter {
	return &Limiter{
		entries:     make(map[string]*entry),
		clock:       clk,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow records one attempt for key and reports whether it is admitted.
// The read-check-write below is a single critical section: two callers
// both at count == maxAttempts-1 must not both be admitted.
func (l *Limiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStartedAt) > l.window {
		l.entries[key] = &entry{count: 1, windowStartedAt: now}
		return true
	}

	if e.count < l.maxAttempts {
		e.count++
		return true
	}

	// Denied attempts do not extend the window; it expires naturally.
	return false
}

// Reset deletes the entry for key, re-enabling it immediately even
// mid-window. Used by privileged actions clearing a lockout.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
}
