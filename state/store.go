// SPDX-License-Identifier: LGPL-3.0-or-later

package state

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ecco-mesh/ecco/internal/logger"
)

// ErrCASExhausted is returned when Update could not land its change
// within the bounded retry budget of spec.md section 4.2 (max 100
// attempts, backoff doubling from 1ms capped at 10ms).
var ErrCASExhausted = errors.New("state: compare-and-swap retry budget exhausted")

const (
	initialBackoff = 1 * time.Millisecond
	maxBackoff     = 10 * time.Millisecond
	maxAttempts    = 100
)

// Store is the single CAS-guarded NodeState value described in spec.md
// section 4.2. All mutations that touch peers, subscriptions,
// flood-protection maps, or pending settlements go through Update/Modify.
type Store struct {
	ptr atomic.Pointer[NodeState]
	log logger.Logger
}

// NewStore wraps initial in a Store ready for concurrent CAS updates.
func NewStore(initial *NodeState, log logger.Logger) *Store {
	if log == nil {
		log = logger.GetDefaultLogger()
	}
	s := &Store{log: log}
	s.ptr.Store(initial)
	return s
}

// Snapshot returns the current state. The returned value must be treated
// as read-only by the caller; mutate only through Update/Modify.
func (s *Store) Snapshot() *NodeState {
	return s.ptr.Load()
}

// Update applies updater to a cloned copy of the current state and
// installs it via compare-and-swap, retrying with doubling backoff on
// collision up to maxAttempts times.
func (s *Store) Update(updater func(next *NodeState) error) error {
	_, err := Modify(s, func(next *NodeState) (*NodeState, struct{}, error) {
		if err := updater(next); err != nil {
			return nil, struct{}{}, err
		}
		return next, struct{}{}, nil
	})
	return err
}

// Modify is like Update but also returns a caller-supplied result value,
// per spec.md section 4.2's "modifyState additionally returns a result".
// It is a free function (not a method) because Go forbids generic
// methods.
func Modify[T any](s *Store, updater func(next *NodeState) (*NodeState, T, error)) (T, error) {
	backoff := initialBackoff
	var zero T
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cur := s.ptr.Load()
		candidate := cur.Clone()
		next, result, err := updater(candidate)
		if err != nil {
			return zero, err
		}
		if next == nil {
			next = candidate
		}
		next.Version = cur.Version + 1
		if s.ptr.CompareAndSwap(cur, next) {
			return result, nil
		}
		s.log.Debug("state: CAS collision, retrying", logger.Int("attempt", attempt))
		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
	return zero, fmt.Errorf("%w after %d attempts", ErrCASExhausted, maxAttempts)
}

// RegisterCleanup appends a cleanup handler under the same CAS path used
// by every other mutation, per spec.md section 4.2.
func (s *Store) RegisterCleanup(name string, run func() error) error {
	return s.Update(func(next *NodeState) error {
		next.CleanupHandlers = append(next.CleanupHandlers, CleanupHandler{Name: name, Run: run})
		return nil
	})
}

// RunCleanupHandlers invokes every registered handler in registration
// order; a handler error is logged and does not abort the remaining
// handlers, per spec.md section 4.2/4.11.
func (s *Store) RunCleanupHandlers() {
	snap := s.Snapshot()
	for _, h := range snap.CleanupHandlers {
		if err := h.Run(); err != nil {
			s.log.Error("state: cleanup handler failed", logger.String("handler", h.Name), logger.Error(err))
		}
	}
}

// BeginShutdown sets the shuttingDown flag, checked by every loop head
// per spec.md section 5.
func (s *Store) BeginShutdown() error {
	return s.Update(func(next *NodeState) error {
		next.ShuttingDown = true
		return nil
	})
}

// IsShuttingDown reports the current shuttingDown flag without going
// through the CAS path (a read-only snapshot check).
func (s *Store) IsShuttingDown() bool {
	return s.Snapshot().ShuttingDown
}
