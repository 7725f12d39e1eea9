// SPDX-License-Identifier: LGPL-3.0-or-later

package flood

// Config configures a Guard's deduplicator and rate limiter, per
// spec.md section 4.9's default constants.
type Config struct {
	ExpectedItems     uint
	FalsePositiveRate float64
	MaxTokens         int
	RefillRate        float64
}

// Guard is the combined flood-protection check applied to every inbound
// pubsub/transport message after signature verification but before
// handler dispatch, per spec.md section 4.9.
type Guard struct {
	dedup   *Deduplicator
	limiter *RateLimiter
}

// NewGuard builds a Guard from cfg, applying spec.md section 4.9's
// defaults for any zero field.
func NewGuard(cfg Config) *Guard {
	return &Guard{
		dedup:   NewDeduplicator(cfg.ExpectedItems, cfg.FalsePositiveRate),
		limiter: NewRateLimiter(cfg.MaxTokens, cfg.RefillRate),
	}
}

// Admit reports whether a message with the given id from peerID should
// be dispatched: it must clear both the per-peer rate limit and the
// id-deduplication check, in that order (spec.md section 4.9 rate-limits
// a flooding peer even when it varies message ids to dodge dedup).
func (g *Guard) Admit(peerID, id string) bool {
	if !g.limiter.CheckAndConsume(peerID) {
		return false
	}
	return !g.dedup.CheckAndMark(id)
}

// ForgetPeer drops peerID's rate-limit bucket, e.g. on disconnect.
func (g *Guard) ForgetPeer(peerID string) {
	g.limiter.Forget(peerID)
}
