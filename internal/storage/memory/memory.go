// Package memory provides an in-memory account store used for development
// and tests. It keeps the code paths easy to follow while the file and
// postgres stores carry real durability.
package memory

import (
	"context"
	"sync"

	"github.com/smartbank/ledger/internal/bank"
)

// Store is an in-memory implementation of the ledger's Store interface.
// It records the last rewritten account set and counts rewrites so tests can
// assert when persistence did or did not happen.
type Store struct {
	mu       sync.RWMutex
	accounts []bank.Account
	rewrites int
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{}
}

// Seed places accounts into the store without counting as a rewrite.
func (s *Store) Seed(accounts ...bank.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, accounts...)
}

// Load returns the last stored account set.
func (s *Store) Load(_ context.Context) ([]bank.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]bank.Account(nil), s.accounts...), nil
}

// Rewrite replaces the stored account set.
func (s *Store) Rewrite(_ context.Context, accounts []bank.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append([]bank.Account(nil), accounts...)
	s.rewrites++
	return nil
}

// Rewrites reports how many times Rewrite has been called.
func (s *Store) Rewrites() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rewrites
}
