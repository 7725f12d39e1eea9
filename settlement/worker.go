// SPDX-License-Identifier: LGPL-3.0-or-later

package settlement

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ecco-mesh/ecco/internal/logger"
	"github.com/ecco-mesh/ecco/state"
)

// Defaults per spec.md section 4.10.
const (
	DefaultTickInterval   = 5 * time.Second
	DefaultInitialBackoff = 1 * time.Second
	DefaultMaxBackoff     = 60 * time.Second
)

// Config configures a Worker.
type Config struct {
	Store          *state.Store
	Ledger         LedgerStore
	Pay            PayFunc
	TickInterval   time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Log            logger.Logger
}

func (c *Config) applyDefaults() {
	if c.TickInterval <= 0 {
		c.TickInterval = DefaultTickInterval
	}
	if c.InitialBackoff <= 0 {
		c.InitialBackoff = DefaultInitialBackoff
	}
	if c.MaxBackoff <= 0 {
		c.MaxBackoff = DefaultMaxBackoff
	}
	if c.Log == nil {
		c.Log = logger.GetDefaultLogger()
	}
}

// Worker is the single per-node settlement loop of spec.md section 4.10.
type Worker struct {
	cfg  Config
	refs *refQueue

	mu      sync.Mutex
	started bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// New builds a Worker from cfg, applying spec.md section 4.10's defaults
// for TickInterval/InitialBackoff/MaxBackoff.
func New(cfg Config) *Worker {
	cfg.applyDefaults()
	return &Worker{cfg: cfg, refs: newRefQueue()}
}

// Start launches the tick loop in its own goroutine.
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return nil
	}
	w.started = true
	w.stopCh = make(chan struct{})
	w.wg.Add(1)
	go w.loop(ctx)
	return nil
}

// Stop halts the loop and waits for the in-flight tick, if any, to finish.
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return
	}
	w.started = false
	close(w.stopCh)
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-w.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

// tick processes exactly one head intent, per spec.md section 4.10.
func (w *Worker) tick(ctx context.Context) {
	if w.cfg.Store.IsShuttingDown() {
		return
	}

	snap := w.cfg.Store.Snapshot()
	if len(snap.PendingSettlements) == 0 {
		return
	}

	pending := append([]state.SettlementIntent(nil), snap.PendingSettlements...)
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].Priority != pending[j].Priority {
			return pending[i].Priority > pending[j].Priority
		}
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	w.processIntent(ctx, pending[0])
}

func (w *Worker) processIntent(ctx context.Context, intent state.SettlementIntent) {
	w.refs.do(intent.LedgerEntryID, func() {
		txHash, err := w.payWithRetry(ctx, intent)
		if err == nil {
			if lerr := w.cfg.Ledger.MarkSettled(ctx, intent.LedgerEntryID, txHash); lerr != nil {
				w.cfg.Log.Error("settlement: mark settled failed", logger.String("intent", intent.ID), logger.Error(lerr))
			}
		} else {
			if lerr := w.cfg.Ledger.MarkCancelled(ctx, intent.LedgerEntryID, err.Error()); lerr != nil {
				w.cfg.Log.Error("settlement: mark cancelled failed", logger.String("intent", intent.ID), logger.Error(lerr))
			}
		}
		w.removeIntent(intent.ID)
	})
}

// payWithRetry calls Pay with exponential backoff (doubling from
// InitialBackoff, capped at MaxBackoff) for up to
// maxRetries-retryCount attempts, per spec.md section 4.10.
func (w *Worker) payWithRetry(ctx context.Context, intent state.SettlementIntent) (common.Hash, error) {
	attempts := intent.MaxRetries - intent.RetryCount
	if attempts < 1 {
		attempts = 1
	}

	backoff := w.cfg.InitialBackoff
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return common.Hash{}, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > w.cfg.MaxBackoff {
				backoff = w.cfg.MaxBackoff
			}
		}
		txHash, err := w.cfg.Pay(ctx, intent.Invoice)
		if err == nil {
			return txHash, nil
		}
		lastErr = err
		w.cfg.Log.Warn("settlement: pay attempt failed", logger.String("intent", intent.ID), logger.Int("attempt", attempt), logger.Error(err))
	}
	return common.Hash{}, lastErr
}

func (w *Worker) removeIntent(id string) {
	err := w.cfg.Store.Update(func(next *state.NodeState) error {
		for i, in := range next.PendingSettlements {
			if in.ID == id {
				next.PendingSettlements = append(next.PendingSettlements[:i], next.PendingSettlements[i+1:]...)
				break
			}
		}
		return nil
	})
	if err != nil {
		w.cfg.Log.Error("settlement: remove intent failed", logger.String("intent", id), logger.Error(err))
	}
}
