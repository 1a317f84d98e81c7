package errs

import "errors"

// Common sentinel errors for cross-layer signaling. The ledger service
// returns these and the HTTP layer maps them onto status codes.
var (
	// ErrNotFound indicates an unknown account number.
	ErrNotFound = errors.New("account_not_found")
	// ErrInvalidAmount indicates a non-positive amount where a positive one is required.
	ErrInvalidAmount = errors.New("invalid_amount")
	// ErrInsufficientFunds indicates a withdrawal exceeding the balance with no overdraft.
	ErrInsufficientFunds = errors.New("insufficient_funds")
	// ErrOverdraftLimit indicates a withdrawal that would breach the overdraft ceiling.
	ErrOverdraftLimit = errors.New("overdraft_limit_exceeded")
	// ErrWrongKind indicates an operation not applicable to the account's kind.
	ErrWrongKind = errors.New("wrong_account_kind")
	// ErrInvalidArgument indicates a malformed request, e.g. a transfer to self.
	ErrInvalidArgument = errors.New("invalid_argument")
)
