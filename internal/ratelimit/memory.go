package ratelimit

import (
	"context"
	"sync"
	"time"
)

// InMemoryLimiter implements Limiter with a per-key sliding window. Used when
// redis is not configured; per-node limits are acceptable for a single-node
// deployment.
type InMemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*slidingWindow
}

type slidingWindow struct {
	timestamps []time.Time
}

func NewInMemory() *InMemoryLimiter {
	return &InMemoryLimiter{windows: make(map[string]*slidingWindow)}
}

func (l *InMemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (*Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w := l.windows[key]
	if w == nil {
		w = &slidingWindow{}
		l.windows[key] = w
	}
	w.drop(now.Add(-window))

	if len(w.timestamps) >= limit {
		return &Result{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: w.timestamps[0].Add(window).Sub(now),
		}, nil
	}

	w.timestamps = append(w.timestamps, now)
	return &Result{
		Allowed:   true,
		Remaining: limit - len(w.timestamps),
	}, nil
}

// drop discards timestamps older than the cutoff.
func (w *slidingWindow) drop(cutoff time.Time) {
	kept := w.timestamps[:0]
	for _, ts := range w.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	w.timestamps = kept
}
