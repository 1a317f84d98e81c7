// Package bank implements the account kinds and their balance rules:
// deposits, withdrawals with an optional overdraft, per-kind interest, and
// the month-end procedure. The kind set is closed; all implementations of
// Account live in this package.
package bank

import (
	"fmt"
	"strings"

	"github.com/smartbank/ledger/internal/errs"
	"github.com/smartbank/ledger/internal/statement"
)

// Kind tags an account's behavior. The tags double as the kind field of the
// durable store rows.
type Kind string

const (
	KindSavings Kind = "SAVINGS"
	KindCurrent Kind = "CURRENT"
	KindLoan    Kind = "LOAN"
)

// FeatureSet is a bitmask of optional account capabilities. Only
// FeatureOverdraft changes behavior; the others are carried as metadata.
type FeatureSet int

const (
	FeatureOverdraft FeatureSet = 1 << iota
	FeatureSMSAlert
	FeaturePremium
)

// Has reports whether any flag in mask is set.
func (f FeatureSet) Has(mask FeatureSet) bool { return f&mask != 0 }

// String lists the enabled features, e.g. "OVERDRAFT,SMS".
func (f FeatureSet) String() string {
	var parts []string
	if f.Has(FeatureOverdraft) {
		parts = append(parts, "OVERDRAFT")
	}
	if f.Has(FeatureSMSAlert) {
		parts = append(parts, "SMS")
	}
	if f.Has(FeaturePremium) {
		parts = append(parts, "PREMIUM")
	}
	return strings.Join(parts, ",")
}

// overdraftFloor is the fixed ceiling on overdrawn balances: even with
// FeatureOverdraft a withdrawal may not take the balance below this value.
const overdraftFloor = -5000.0

// Account is the closed polymorphic account type. Deposit and Withdraw are
// shared across kinds; interest behavior and the persistence extension field
// vary per kind. Accounts buffer statement lines for every balance change
// until the owner drains and flushes them.
type Account interface {
	Number() int
	Holder() string
	Balance() float64
	Features() FeatureSet
	Kind() Kind

	// Deposit adds a positive amount to the balance.
	Deposit(amount float64) error
	// Withdraw removes a positive amount, honoring the overdraft rules.
	Withdraw(amount float64) error
	// CalculateInterest returns one month's interest for the current balance.
	CalculateInterest() float64
	// ApplyInterest credits the interest amount; loans debit it instead,
	// since interest increases what is owed. A zero amount is a no-op.
	ApplyInterest(amount float64)
	// Extra is the kind-specific key=value extension persisted with the account.
	Extra() string
	// DrainStatements returns the buffered statement lines and clears the buffer.
	DrainStatements() []statement.Line

	fmt.Stringer

	// Month-end hooks. The fixed sequence is driven by MonthEnd.
	preMonth()
	postMonth()
	// record buffers a statement line with the post-operation balance.
	record(event statement.Event, amount float64)
}

// base carries the state and behavior shared by every account kind.
type base struct {
	number   int
	holder   string
	balance  float64
	features FeatureSet
	pending  []statement.Line
}

func (b *base) Number() int          { return b.number }
func (b *base) Holder() string       { return b.holder }
func (b *base) Balance() float64     { return b.balance }
func (b *base) Features() FeatureSet { return b.features }

func (b *base) Deposit(amount float64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	b.balance += amount
	b.record(statement.EventDeposit, amount)
	return nil
}

func (b *base) Withdraw(amount float64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	if amount > b.balance {
		if !b.features.Has(FeatureOverdraft) {
			return errs.ErrInsufficientFunds
		}
		if b.balance-amount < overdraftFloor {
			return errs.ErrOverdraftLimit
		}
	}
	b.balance -= amount
	b.record(statement.EventWithdraw, amount)
	return nil
}

func (b *base) ApplyInterest(amount float64) {
	if amount == 0 {
		return
	}
	b.balance += amount
	b.record(statement.EventInterest, amount)
}

// record appends a statement line with the post-operation balance.
func (b *base) record(event statement.Event, amount float64) {
	b.pending = append(b.pending, statement.New(b.number, event, amount, b.balance))
}

func (b *base) DrainStatements() []statement.Line {
	out := b.pending
	b.pending = nil
	return out
}

// String renders the account summary shown in listings.
func (b *base) String() string {
	return fmt.Sprintf("%d | %s | Bal: %.2f | Features: %s",
		b.number, b.holder, b.balance, b.features)
}

func (b *base) preMonth()  {}
func (b *base) postMonth() {}
