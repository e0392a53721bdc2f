// Package ratelimit bounds submission attempts per applicant. It protects the
// store and the email sender from runaway resubmission, not from distributed
// abuse; that belongs to edge infrastructure.
package ratelimit

import (
	"context"
	"time"
)

// Result reports one rate-limit decision.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter answers whether one more event is allowed for a key within a window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)
}
