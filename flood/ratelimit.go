// SPDX-License-Identifier: LGPL-3.0-or-later

package flood

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default token-bucket parameters, per spec.md section 4.9.
const (
	DefaultMaxTokens   = 100
	DefaultRefillRate  = 10 // tokens per second
	DefaultRefillEvery = time.Second
)

// RateLimiter holds one token bucket per peer, refilled continuously at
// RefillRate tokens/second up to MaxTokens, via golang.org/x/time/rate.
type RateLimiter struct {
	maxTokens  int
	refillRate float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter builds a RateLimiter; maxTokens <= 0 and refillRate <= 0
// fall back to the spec.md section 4.9 defaults.
func NewRateLimiter(maxTokens int, refillRate float64) *RateLimiter {
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if refillRate <= 0 {
		refillRate = DefaultRefillRate
	}
	return &RateLimiter{
		maxTokens:  maxTokens,
		refillRate: refillRate,
		limiters:   make(map[string]*rate.Limiter),
	}
}

// CheckAndConsume refills peerID's bucket for elapsed time and either
// consumes one token (true) or refuses (false). Exceeding the limit is
// not an error: the caller drops the message with a warning.
func (r *RateLimiter) CheckAndConsume(peerID string) bool {
	return r.limiterFor(peerID).Allow()
}

func (r *RateLimiter) limiterFor(peerID string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.limiters[peerID]
	if !ok {
		l = rate.NewLimiter(rate.Limit(r.refillRate), r.maxTokens)
		r.limiters[peerID] = l
	}
	return l
}

// Forget drops peerID's bucket, e.g. once its handshake is rejected and
// it is disconnected.
func (r *RateLimiter) Forget(peerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.limiters, peerID)
}
