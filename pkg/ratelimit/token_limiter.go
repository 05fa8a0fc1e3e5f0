package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter enforces a per-minute token budget for model API calls.
// The budget refills at the start of every window.
type TokenLimiter struct {
	mu             sync.Mutex
	maxPerMinute   int
	remaining      int
	windowStartsAt time.Time
}

// NewTokenLimiter creates a limiter allowing maxPerMinute tokens per minute.
func NewTokenLimiter(maxPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		maxPerMinute:   maxPerMinute,
		remaining:      maxPerMinute,
		windowStartsAt: time.Now(),
	}
}

// Wait blocks until the given number of tokens can be consumed or the
// context is canceled. Requests larger than the whole budget are allowed
// through once the window is fresh.
func (l *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	for {
		l.mu.Lock()
		l.refillLocked()
		if l.remaining >= tokens || l.remaining == l.maxPerMinute {
			l.remaining -= tokens
			l.mu.Unlock()
			return nil
		}
		waitFor := time.Until(l.windowStartsAt.Add(time.Minute))
		l.mu.Unlock()

		if waitFor <= 0 {
			continue
		}
		timer := time.NewTimer(waitFor)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// GetRemaining returns the tokens left in the current window.
func (l *TokenLimiter) GetRemaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refillLocked()
	return l.remaining
}

func (l *TokenLimiter) refillLocked() {
	if time.Since(l.windowStartsAt) >= time.Minute {
		l.remaining = l.maxPerMinute
		l.windowStartsAt = time.Now()
	}
}
