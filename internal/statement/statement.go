// Package statement provides the human-readable transaction records buffered
// per account and the append-only log file they are flushed to.
package statement

import (
	"fmt"
	"time"
)

// Event identifies the kind of transaction a statement line records.
type Event string

const (
	EventAccountCreated Event = "AccountCreated"
	EventDeposit        Event = "Deposit"
	EventWithdraw       Event = "Withdraw"
	EventInterest       Event = "Interest"
	EventLoanInterest   Event = "LoanInterest"
	EventLoanRepay      Event = "LoanRepay"
)

// timeLayout is the timestamp format used in the statement log.
const timeLayout = "2006-01-02 15:04:05"

// Line is one statement record for one account. Balance is the balance
// immediately after the recorded event.
type Line struct {
	Time          time.Time
	AccountNumber int
	Event         Event
	Amount        float64
	Balance       float64
}

// New builds a line stamped with the current time.
func New(accountNumber int, event Event, amount, balance float64) Line {
	return Line{
		Time:          time.Now(),
		AccountNumber: accountNumber,
		Event:         event,
		Amount:        amount,
		Balance:       balance,
	}
}

// String renders the line in the log format, e.g.
// "2025-01-31 17:03:12 | 1001 | Deposit | 100.00 | Bal: 1100.00".
func (l Line) String() string {
	return fmt.Sprintf("%s | %d | %s | %.2f | Bal: %.2f",
		l.Time.Format(timeLayout), l.AccountNumber, l.Event, l.Amount, l.Balance)
}
