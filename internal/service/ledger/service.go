// Package ledger implements the account ledger service. It owns the account
// map and the account-number allocator, applies every mutating operation
// through the account kinds, and after each successful mutation rewrites the
// durable store and flushes the touched accounts' statement lines.
package ledger

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/smartbank/ledger/internal/bank"
	"github.com/smartbank/ledger/internal/errs"
	"github.com/smartbank/ledger/internal/statement"
)

// Store is the durable account store. Rewrite replaces the full account set;
// there is no incremental persistence.
type Store interface {
	Load(ctx context.Context) ([]bank.Account, error)
	Rewrite(ctx context.Context, accounts []bank.Account) error
}

// StatementLog is the append-only transaction history.
type StatementLog interface {
	Append(lines []statement.Line) error
	Tail(n int) ([]string, error)
}

// firstAccountNumber seeds allocation for an empty store.
const firstAccountNumber = 1001

// defaultStatementTail is how many statement lines Statements returns when
// the caller does not say.
const defaultStatementTail = 50

// Service is the ledger. A single mutex serializes all operations, so each
// mutate-then-persist sequence is atomic as observed by callers.
type Service struct {
	mu         sync.Mutex
	store      Store
	statements StatementLog
	log        *slog.Logger

	accounts   map[int]bank.Account
	nextNumber int
}

// New loads the persisted accounts and seeds the number allocator from the
// highest stored account number. Numbers are never reused.
func New(ctx context.Context, store Store, statements StatementLog, logger *slog.Logger) (*Service, error) {
	accs, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := &Service{
		store:      store,
		statements: statements,
		log:        logger,
		accounts:   make(map[int]bank.Account, len(accs)),
		nextNumber: firstAccountNumber,
	}
	for _, a := range accs {
		s.accounts[a.Number()] = a
		if a.Number() >= s.nextNumber {
			s.nextNumber = a.Number() + 1
		}
	}
	return s, nil
}

// CreateParams describes a new account request.
type CreateParams struct {
	Kind   bank.Kind
	Holder string
	// Amount is the opening deposit, or the principal for loans.
	Amount   float64
	Features bank.FeatureSet
	Rate     *float64
	Months   *int
}

// CreateAccount validates the opening amount for the kind, allocates the
// next account number, and constructs and persists the account.
func (s *Service) CreateAccount(ctx context.Context, p CreateParams) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Kind == bank.KindLoan {
		if p.Amount <= 0 {
			return nil, errs.ErrInvalidAmount
		}
	} else if p.Amount < 0 {
		return nil, errs.ErrInvalidAmount
	}
	acc, err := bank.New(p.Kind, s.nextNumber, p.Holder, p.Amount, p.Features, bank.Params{Rate: p.Rate, Months: p.Months})
	if err != nil {
		return nil, err
	}
	s.nextNumber++
	s.accounts[acc.Number()] = acc
	s.persist(ctx)
	s.flush(acc)
	return acc, nil
}

// Deposit credits the account. On failure nothing is mutated or persisted.
func (s *Service) Deposit(ctx context.Context, number int, amount float64) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[number]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if err := acc.Deposit(amount); err != nil {
		return nil, err
	}
	s.persist(ctx)
	s.flush(acc)
	return acc, nil
}

// Withdraw debits the account, honoring the kind's overdraft rules. On
// failure nothing is mutated or persisted.
func (s *Service) Withdraw(ctx context.Context, number int, amount float64) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[number]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if err := acc.Withdraw(amount); err != nil {
		return nil, err
	}
	s.persist(ctx)
	s.flush(acc)
	return acc, nil
}

// Transfer moves amount between two distinct accounts as withdraw then
// deposit. Withdraw validates before mutating, so a withdraw failure leaves
// both accounts untouched. The deposit step cannot fail for a positive
// amount under the current rules; if that ever changed, the source would
// stay debited with no matching credit.
func (s *Service) Transfer(ctx context.Context, from, to int, amount float64) (src, dst bank.Account, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if from == to {
		return nil, nil, errs.ErrInvalidArgument
	}
	src, ok := s.accounts[from]
	if !ok {
		return nil, nil, errs.ErrNotFound
	}
	dst, ok = s.accounts[to]
	if !ok {
		return nil, nil, errs.ErrNotFound
	}
	if err := src.Withdraw(amount); err != nil {
		return nil, nil, err
	}
	if err := dst.Deposit(amount); err != nil {
		return nil, nil, err
	}
	s.persist(ctx)
	s.flush(src)
	s.flush(dst)
	return src, dst, nil
}

// RepayLoan credits a repayment toward a loan account.
func (s *Service) RepayLoan(ctx context.Context, number int, amount float64) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[number]
	if !ok {
		return nil, errs.ErrNotFound
	}
	loan, ok := acc.(*bank.Loan)
	if !ok {
		return nil, errs.ErrWrongKind
	}
	if err := loan.Repay(amount); err != nil {
		return nil, err
	}
	s.persist(ctx)
	s.flush(loan)
	return loan, nil
}

// ProcessMonthEnd runs the month-end sequence over every account, flushes
// each account's statement lines, then rewrites the store once. Iteration
// order over the account map is not significant to the result. It returns
// the number of accounts processed.
func (s *Service) ProcessMonthEnd(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		bank.MonthEnd(acc)
		s.flush(acc)
	}
	s.persist(ctx)
	return len(s.accounts)
}

// ListAccounts returns all accounts ordered by number. Read-only.
func (s *Service) ListAccounts(context.Context) []bank.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// GetAccount returns one account by number. Read-only.
func (s *Service) GetAccount(_ context.Context, number int) (bank.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[number]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return acc, nil
}

// Statements returns the last n statement log lines, oldest first. n <= 0
// means the default of 50.
func (s *Service) Statements(n int) ([]string, error) {
	if n <= 0 {
		n = defaultStatementTail
	}
	return s.statements.Tail(n)
}

// persist rewrites the durable store with the current account set. Failures
// are logged and swallowed: the in-memory mutation stands even when the
// rewrite fails, so disk state can lag until the next successful rewrite.
func (s *Service) persist(ctx context.Context) {
	if err := s.store.Rewrite(ctx, s.snapshot()); err != nil {
		s.log.Error("account store rewrite failed", "err", err)
	}
}

// flush appends the account's buffered statement lines to the log. Like
// persist, failures are logged without unwinding the mutation.
func (s *Service) flush(acc bank.Account) {
	lines := acc.DrainStatements()
	if len(lines) == 0 {
		return
	}
	if err := s.statements.Append(lines); err != nil {
		s.log.Error("statement flush failed", "account", acc.Number(), "err", err)
	}
}

func (s *Service) snapshot() []bank.Account {
	out := make([]bank.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out
}
