package bank

import (
	"fmt"
	"math"

	"github.com/smartbank/ledger/internal/errs"
	"github.com/smartbank/ledger/internal/statement"
)

// Loan tracks borrowed money as a negative balance: the magnitude is the
// amount owed. Interest accrues monthly on the outstanding magnitude and
// increases the debt.
type Loan struct {
	base
	rate            float64
	monthsRemaining int
	principal       float64
}

func (l *Loan) Kind() Kind { return KindLoan }

// Rate returns the annual interest rate.
func (l *Loan) Rate() float64 { return l.rate }

// MonthsRemaining returns the remaining term in months. It only counts down,
// one month per month-end run, and floors at zero.
func (l *Loan) MonthsRemaining() int { return l.monthsRemaining }

// Principal returns the original loan amount. For accounts restored from the
// store this is the magnitude of the stored balance, which overstates the
// true principal once interest has accrued; the store does not keep the
// original figure separately.
func (l *Loan) Principal() float64 { return l.principal }

// CalculateInterest returns one month's simple interest on the outstanding
// magnitude.
func (l *Loan) CalculateInterest() float64 {
	return math.Abs(l.balance) * l.rate / 12
}

// ApplyInterest pushes the balance further below zero: loan interest adds to
// what is owed. A zero amount is a no-op.
func (l *Loan) ApplyInterest(amount float64) {
	if amount == 0 {
		return
	}
	l.balance -= amount
	l.record(statement.EventLoanInterest, amount)
}

// Repay credits a positive amount toward the loan, moving the balance toward
// zero. Repayment is not capped at the amount owed: overpaying leaves the
// balance positive.
func (l *Loan) Repay(amount float64) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	l.balance += amount
	l.record(statement.EventLoanRepay, amount)
	return nil
}

func (l *Loan) postMonth() {
	if l.monthsRemaining > 0 {
		l.monthsRemaining--
	}
}

func (l *Loan) Extra() string {
	return fmt.Sprintf("months=%d,rate=%.4f", l.monthsRemaining, l.rate)
}
