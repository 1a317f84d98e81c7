// Package postgres provides a pgx-backed account store for deployments that
// keep the account set in a database instead of the local data file. It maps
// the same row fields the file store uses onto columns:
//
//	accounts (
//	    number   bigint primary key,
//	    kind     text not null,
//	    holder   text not null,
//	    balance  double precision not null,
//	    features integer not null,
//	    extra    text not null default ''
//	)
//
// Rewrite preserves the wholesale-rewrite semantics of the file store: each
// call replaces the full account set inside one transaction.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartbank/ledger/internal/bank"
	"github.com/smartbank/ledger/internal/storage/file"
)

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string and
// verifies connectivity.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// Load returns all stored accounts. Rows with an unknown kind tag are
// skipped, matching the file store's tolerant decode.
func (s *Store) Load(ctx context.Context) ([]bank.Account, error) {
	rows, err := s.pool.Query(ctx, `
		select number, kind, holder, balance, features, extra
		from accounts
		order by number
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []bank.Account
	for rows.Next() {
		var (
			number, features    int
			kind, holder, extra string
			balance             float64
		)
		if err := rows.Scan(&number, &kind, &holder, &balance, &features, &extra); err != nil {
			return nil, err
		}
		acc, ok := bank.Restore(bank.Kind(kind), number, holder, balance, bank.FeatureSet(features), file.ParseExtra(extra))
		if !ok {
			continue
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// Rewrite replaces the full account set in one transaction.
func (s *Store) Rewrite(ctx context.Context, accounts []bank.Account) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `delete from accounts`); err != nil {
		return err
	}
	for _, a := range accounts {
		if _, err := tx.Exec(ctx, `
			insert into accounts (number, kind, holder, balance, features, extra)
			values ($1, $2, $3, $4, $5, $6)
		`, a.Number(), string(a.Kind()), a.Holder(), a.Balance(), int(a.Features()), a.Extra()); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
