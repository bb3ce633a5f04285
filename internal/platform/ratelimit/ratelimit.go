// Package ratelimit provides per-key submission throttling
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of a limiter check
type Decision struct {
	Allowed bool
	// RetryAfter is how long the caller should wait, zero when Allowed
	RetryAfter time.Duration
}

// Limiter records an attempt for key and reports whether it is allowed.
// A denied attempt does not extend the wait of an existing entry
type Limiter interface {
	CheckAndRecord(ctx context.Context, key string) (Decision, error)
}

// Memory is an in-process limiter keyed by string with a fixed window.
// Safe for concurrent use
type Memory struct {
	window time.Duration

	mu   sync.Mutex
	seen map[string]time.Time

	// now is a seam for tests
	now func() time.Time
}

// staleAfter is how old an entry must be before sweeps drop it
const staleAfter = time.Hour

// NewMemory builds a Memory limiter with the given window
func NewMemory(window time.Duration) *Memory {
	return &Memory{
		window: window,
		seen:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// CheckAndRecord allows the first attempt per key per window.
// Entries older than an hour are swept on each call to bound memory
func (m *Memory) CheckAndRecord(_ context.Context, key string) (Decision, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	for k, at := range m.seen {
		if now.Sub(at) > staleAfter {
			delete(m.seen, k)
		}
	}

	if at, ok := m.seen[key]; ok {
		if wait := m.window - now.Sub(at); wait > 0 {
			return Decision{Allowed: false, RetryAfter: wait}, nil
		}
	}

	m.seen[key] = now
	return Decision{Allowed: true}, nil
}

// Len reports the tracked entry count, used by tests and health detail
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.seen)
}
