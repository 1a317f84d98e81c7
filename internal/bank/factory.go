package bank

import (
	"math"

	"github.com/smartbank/ledger/internal/errs"
	"github.com/smartbank/ledger/internal/statement"
)

// Defaults applied when a kind parameter is neither supplied at creation nor
// present in a stored record's extension field.
const (
	DefaultSavingsRate = 0.04
	DefaultLoanRate    = 0.12
	DefaultLoanMonths  = 12
)

// Params carries the optional kind-specific parameters. Nil fields take the
// kind defaults. Current accounts ignore both.
type Params struct {
	Rate   *float64
	Months *int
}

func (p Params) rate(def float64) float64 {
	if p.Rate != nil {
		return *p.Rate
	}
	return def
}

func (p Params) months(def int) int {
	if p.Months != nil {
		return *p.Months
	}
	return def
}

// New constructs a fresh account of the given kind and buffers its
// AccountCreated statement line. For loans, amount is the principal and the
// opening balance is its negation; for the other kinds it is the opening
// deposit. Amount validation is the caller's (the ledger's) responsibility.
func New(kind Kind, number int, holder string, amount float64, features FeatureSet, p Params) (Account, error) {
	var acc Account
	switch kind {
	case KindSavings:
		acc = &Savings{
			base: base{number: number, holder: holder, balance: amount, features: features},
			rate: p.rate(DefaultSavingsRate),
		}
	case KindCurrent:
		acc = &Current{
			base: base{number: number, holder: holder, balance: amount, features: features},
		}
	case KindLoan:
		acc = &Loan{
			base:            base{number: number, holder: holder, balance: -amount, features: features},
			rate:            p.rate(DefaultLoanRate),
			monthsRemaining: p.months(DefaultLoanMonths),
			principal:       amount,
		}
	default:
		return nil, errs.ErrInvalidArgument
	}
	acc.record(statement.EventAccountCreated, amount)
	return acc, nil
}

// Restore rebuilds an account from persisted state, keeping the stored
// balance verbatim. It reports ok=false for unknown kind tags so the caller
// can skip the record. A restored loan's principal is recovered as the
// magnitude of the stored balance.
func Restore(kind Kind, number int, holder string, balance float64, features FeatureSet, p Params) (Account, bool) {
	switch kind {
	case KindSavings:
		return &Savings{
			base: base{number: number, holder: holder, balance: balance, features: features},
			rate: p.rate(DefaultSavingsRate),
		}, true
	case KindCurrent:
		return &Current{
			base: base{number: number, holder: holder, balance: balance, features: features},
		}, true
	case KindLoan:
		return &Loan{
			base:            base{number: number, holder: holder, balance: balance, features: features},
			rate:            p.rate(DefaultLoanRate),
			monthsRemaining: p.months(DefaultLoanMonths),
			principal:       math.Abs(balance),
		}, true
	default:
		return nil, false
	}
}
