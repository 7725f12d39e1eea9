// SPDX-License-Identifier: LGPL-3.0-or-later

// Package settlement implements the single-worker settlement loop of
// spec.md section 4.10: drain pendingSettlements by (priority desc,
// createdAt asc), pay the head's invoice with retry-with-backoff, and
// leave exactly one terminal ledger entry per intent.
package settlement

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// LedgerStatus is the terminal state spec.md section 4.10 requires
// exactly one of, per settlement intent.
type LedgerStatus string

const (
	LedgerSettled   LedgerStatus = "settled"
	LedgerCancelled LedgerStatus = "cancelled"
)

// LedgerStore is the external collaborator that owns the keyed
// paymentLedger collection of spec.md section 3/6; settlement only ever
// moves an entry to a terminal state, never invents ledger semantics
// (explicitly out of scope per spec.md section 1).
type LedgerStore interface {
	MarkSettled(ctx context.Context, entryID string, txHash common.Hash) error
	MarkCancelled(ctx context.Context, entryID string, reason string) error
}

// PayFunc is the external payment collaborator of spec.md section 4.10:
// an opaque Pay(invoice) call whose wallet/ledger semantics are out of
// scope for this node.
type PayFunc func(ctx context.Context, invoice []byte) (common.Hash, error)
