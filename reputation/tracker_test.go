// SPDX-License-Identifier: LGPL-3.0-or-later

package reputation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeCommitter struct {
	mu    sync.Mutex
	calls [][]Rating
}

func (f *fakeCommitter) Commit(ctx context.Context, ratings []Rating) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]Rating(nil), ratings...))
	return nil
}

func (f *fakeCommitter) snapshot() [][]Rating {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]Rating(nil), f.calls...)
}

func TestRecordLocalSuccessAndFailureUpdateScore(t *testing.T) {
	tr := New(Config{})

	tr.RecordLocalSuccess(context.Background(), "peer-1")
	tr.RecordLocalSuccess(context.Background(), "peer-1")
	tr.RecordLocalFailure(context.Background(), "peer-1")

	rec := tr.Record("peer-1")
	require.Equal(t, int64(2), rec.SuccessfulJobs)
	require.Equal(t, int64(1), rec.FailedJobs)
	require.Equal(t, int64(3), rec.TotalJobs)
	require.InDelta(t, 66.67, rec.LocalScore, 0.01)
	require.False(t, rec.LastInteractionAt.IsZero())
}

func TestScoreReturnsZeroForUnknownPeer(t *testing.T) {
	tr := New(Config{})
	require.Equal(t, float64(0), tr.Score("ghost"))
}

func TestTierBoundaries(t *testing.T) {
	require.Equal(t, TierElite, Tier(90))
	require.Equal(t, TierElite, Tier(100))
	require.Equal(t, TierGood, Tier(70))
	require.Equal(t, TierGood, Tier(89.9))
	require.Equal(t, TierAcceptable, Tier(50))
	require.Equal(t, TierAcceptable, Tier(69.9))
	require.Equal(t, TierNone, Tier(49.9))
	require.Equal(t, TierNone, Tier(0))
}

func TestBatchedCommitTriggersOnThreshold(t *testing.T) {
	committer := &fakeCommitter{}
	tr := New(Config{Committer: committer, CommitThreshold: 3, CommitInterval: time.Hour})

	tr.RecordLocalSuccess(context.Background(), "peer-1")
	tr.RecordLocalSuccess(context.Background(), "peer-1")
	require.Empty(t, committer.snapshot(), "commit must not fire before threshold")

	tr.RecordLocalSuccess(context.Background(), "peer-1")

	calls := committer.snapshot()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 3)
	require.Empty(t, tr.Record("peer-1").PendingRatings, "pending ratings drained after commit")
}

func TestBatchedCommitTriggersOnInterval(t *testing.T) {
	committer := &fakeCommitter{}
	tr := New(Config{Committer: committer, CommitThreshold: 1000, CommitInterval: time.Millisecond})

	tr.RecordLocalSuccess(context.Background(), "peer-1")
	require.Empty(t, committer.snapshot())

	time.Sleep(5 * time.Millisecond)
	tr.RecordLocalFailure(context.Background(), "peer-1")

	calls := committer.snapshot()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 2)
}

func TestWalletResolverCalledOnceAndCached(t *testing.T) {
	var calls int
	var mu sync.Mutex
	tr := New(Config{Resolver: func(ctx context.Context, peerID string) (string, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return "0xabc", nil
	}})

	w1, err := tr.Wallet(context.Background(), "peer-1")
	require.NoError(t, err)
	require.Equal(t, "0xabc", w1)

	w2, err := tr.Wallet(context.Background(), "peer-1")
	require.NoError(t, err)
	require.Equal(t, "0xabc", w2)

	require.Equal(t, 1, calls, "resolver must be consulted at most once per peer")
}

func TestWalletWithoutResolverReturnsEmpty(t *testing.T) {
	tr := New(Config{})
	w, err := tr.Wallet(context.Background(), "peer-1")
	require.NoError(t, err)
	require.Equal(t, "", w)
}

func TestFlushPendingForceCommitsAcrossPeers(t *testing.T) {
	committer := &fakeCommitter{}
	tr := New(Config{Committer: committer, CommitThreshold: 1000, CommitInterval: time.Hour})

	tr.RecordLocalSuccess(context.Background(), "peer-1")
	tr.RecordLocalFailure(context.Background(), "peer-2")
	require.Empty(t, committer.snapshot(), "nothing committed yet")

	require.NoError(t, tr.FlushPending(context.Background()))

	calls := committer.snapshot()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 2)
	require.Empty(t, tr.Record("peer-1").PendingRatings)
	require.Empty(t, tr.Record("peer-2").PendingRatings)
}

func TestFlushPendingWithNoPendingRatingsIsNoop(t *testing.T) {
	committer := &fakeCommitter{}
	tr := New(Config{Committer: committer})

	require.NoError(t, tr.FlushPending(context.Background()))
	require.Empty(t, committer.snapshot())
}
