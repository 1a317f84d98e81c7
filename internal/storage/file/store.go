// Package file implements the durable account store as one human-readable
// file, one row per account. The whole file is rewritten after every
// mutation; there is no incremental update. Rewrites go through an atomic
// replace so a failed write leaves the previous file intact.
package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/smartbank/ledger/internal/bank"
)

// Store persists the full account set to a single file.
type Store struct {
	path string
}

// New returns a store backed by the file at path. The file is created on the
// first rewrite.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the store file location.
func (s *Store) Path() string { return s.path }

// Load reads every decodable row from the store file. Rows that cannot be
// decoded are skipped individually so one bad record cannot block startup.
// A missing file is an empty store.
func (s *Store) Load(_ context.Context) ([]bank.Account, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var accounts []bank.Account
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if acc, ok := Decode(sc.Text()); ok {
			accounts = append(accounts, acc)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Rewrite replaces the store file with the given accounts.
func (s *Store) Rewrite(_ context.Context, accounts []bank.Account) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	for _, a := range accounts {
		buf.WriteString(Encode(a))
		buf.WriteByte('\n')
	}
	return atomic.WriteFile(s.path, &buf)
}
