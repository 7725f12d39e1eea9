// SPDX-License-Identifier: LGPL-3.0-or-later

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecco-mesh/ecco/reputation"
	"github.com/ecco-mesh/ecco/settlement"
)

// Config holds PostgreSQL connection configuration.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

func (c Config) connString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

const schema = `
CREATE TABLE IF NOT EXISTS ledger_entries (
	entry_id    TEXT PRIMARY KEY,
	status      TEXT NOT NULL,
	tx_hash     TEXT,
	reason      TEXT,
	resolved_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS reputation_events (
	peer_id   TEXT NOT NULL,
	success   BOOLEAN NOT NULL,
	observed_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS reputation_events_peer_id_idx ON reputation_events (peer_id);
`

// Store is a PostgreSQL-backed settlement.LedgerStore and
// reputation.Committer pair sharing one connection pool.
type Store struct {
	pool   *pgxpool.Pool
	ledger *ledgerStore
	rep    *reputationStore
}

// NewStore connects to PostgreSQL, migrates the ledger/reputation
// tables if they don't already exist, and returns a ready Store.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	pool, err := pgxpool.New(ctx, cfg.connString())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Store{
		pool:   pool,
		ledger: &ledgerStore{db: pool},
		rep:    &reputationStore{db: pool},
	}, nil
}

// LedgerStore returns the settlement.LedgerStore backed by this pool.
func (s *Store) LedgerStore() settlement.LedgerStore { return s.ledger }

// ReputationStore returns the reputation.Committer backed by this pool.
func (s *Store) ReputationStore() reputation.Committer { return s.rep }

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

type ledgerStore struct {
	db *pgxpool.Pool
}

var _ settlement.LedgerStore = (*ledgerStore)(nil)

func (l *ledgerStore) MarkSettled(ctx context.Context, entryID string, txHash common.Hash) error {
	_, err := l.db.Exec(ctx, `
		INSERT INTO ledger_entries (entry_id, status, tx_hash, resolved_at)
		VALUES ($1, 'settled', $2, $3)
		ON CONFLICT (entry_id) DO UPDATE SET status = 'settled', tx_hash = $2, resolved_at = $3
	`, entryID, txHash.Hex(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark ledger entry settled: %w", err)
	}
	return nil
}

func (l *ledgerStore) MarkCancelled(ctx context.Context, entryID string, reason string) error {
	_, err := l.db.Exec(ctx, `
		INSERT INTO ledger_entries (entry_id, status, reason, resolved_at)
		VALUES ($1, 'cancelled', $2, $3)
		ON CONFLICT (entry_id) DO UPDATE SET status = 'cancelled', reason = $2, resolved_at = $3
	`, entryID, reason, time.Now())
	if err != nil {
		return fmt.Errorf("failed to mark ledger entry cancelled: %w", err)
	}
	return nil
}

// Get reads back a ledger entry, mainly for inspection tooling.
func (l *ledgerStore) Get(ctx context.Context, entryID string) (LedgerEntry, error) {
	var e LedgerEntry
	var txHash, reason *string
	err := l.db.QueryRow(ctx, `
		SELECT entry_id, status, tx_hash, reason, resolved_at FROM ledger_entries WHERE entry_id = $1
	`, entryID).Scan(&e.EntryID, &e.Status, &txHash, &reason, &e.ResolvedAt)
	if err == pgx.ErrNoRows {
		return LedgerEntry{}, fmt.Errorf("ledger entry not found: %s", entryID)
	}
	if err != nil {
		return LedgerEntry{}, fmt.Errorf("failed to get ledger entry: %w", err)
	}
	if txHash != nil {
		e.TxHash = *txHash
	}
	if reason != nil {
		e.Reason = *reason
	}
	return e, nil
}

type reputationStore struct {
	db *pgxpool.Pool
}

var _ reputation.Committer = (*reputationStore)(nil)

func (r *reputationStore) Commit(ctx context.Context, ratings []reputation.Rating) error {
	batch := &pgx.Batch{}
	for _, rt := range ratings {
		batch.Queue(`
			INSERT INTO reputation_events (peer_id, success, observed_at) VALUES ($1, $2, $3)
		`, rt.PeerID, rt.Success, rt.Timestamp)
	}
	if batch.Len() == 0 {
		return nil
	}
	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to commit reputation event %d: %w", i, err)
		}
	}
	return nil
}
