// SPDX-License-Identifier: LGPL-3.0-or-later

package flood

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeduplicatorFlagsRepeatedID(t *testing.T) {
	d := NewDeduplicator(100, 0.01)
	require.False(t, d.CheckAndMark("msg-1"))
	require.True(t, d.CheckAndMark("msg-1"))
	require.False(t, d.CheckAndMark("msg-2"))
}

func TestDeduplicatorRotatesAtCapacityAndKeepsPreviousReadable(t *testing.T) {
	d := NewDeduplicator(4, 0.1)
	for i := 0; i < 4; i++ {
		require.False(t, d.CheckAndMark(fmt.Sprintf("seed-%d", i)))
	}

	// count has reached capacity; the next fresh id triggers a rotation,
	// demoting the filled filter to "previous".
	require.False(t, d.CheckAndMark("seed-4"))

	require.True(t, d.IsDuplicate("seed-0"), "seed-0 still readable through the previous filter after rotation")
}

func TestDeduplicatorIsDuplicateDoesNotMark(t *testing.T) {
	d := NewDeduplicator(100, 0.01)
	require.False(t, d.IsDuplicate("msg-1"))
	require.False(t, d.IsDuplicate("msg-1"), "IsDuplicate alone must not mark the id seen")
	require.False(t, d.CheckAndMark("msg-1"))
	require.True(t, d.IsDuplicate("msg-1"))
}

func TestRateLimiterRefusesBeyondBurst(t *testing.T) {
	rl := NewRateLimiter(3, 0.001)
	allowed := 0
	for i := 0; i < 10; i++ {
		if rl.CheckAndConsume("peer-a") {
			allowed++
		}
	}
	require.Equal(t, 3, allowed)
}

func TestRateLimiterTracksPeersIndependently(t *testing.T) {
	rl := NewRateLimiter(1, 0.001)
	require.True(t, rl.CheckAndConsume("peer-a"))
	require.False(t, rl.CheckAndConsume("peer-a"))
	require.True(t, rl.CheckAndConsume("peer-b"))
}

func TestRateLimiterForgetResetsBucket(t *testing.T) {
	rl := NewRateLimiter(1, 0.001)
	require.True(t, rl.CheckAndConsume("peer-a"))
	require.False(t, rl.CheckAndConsume("peer-a"))
	rl.Forget("peer-a")
	require.True(t, rl.CheckAndConsume("peer-a"))
}

func TestGuardAdmitsOnceThenDrops(t *testing.T) {
	g := NewGuard(Config{ExpectedItems: 100, FalsePositiveRate: 0.01, MaxTokens: 10, RefillRate: 0.001})
	require.True(t, g.Admit("peer-a", "msg-1"))
	require.False(t, g.Admit("peer-a", "msg-1"), "duplicate id from the same peer is dropped")
}

func TestGuardRateLimitsBeforeDedupCheck(t *testing.T) {
	g := NewGuard(Config{ExpectedItems: 100, FalsePositiveRate: 0.01, MaxTokens: 1, RefillRate: 0.001})
	require.True(t, g.Admit("peer-a", "msg-1"))
	require.False(t, g.Admit("peer-a", "msg-2"), "fresh id still dropped once the peer's bucket is empty")
}
