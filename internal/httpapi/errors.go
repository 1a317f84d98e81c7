package httpapi

import (
	"errors"
	"net/http"

	"github.com/smartbank/ledger/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeErr(w, http.StatusBadRequest, msg, "")
}

// writeDomainErr maps ledger errors onto HTTP statuses: unknown account 404,
// malformed request 400, amount/kind validation 422, balance rules 409.
func writeDomainErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error(), "account_not_found")
	case errors.Is(err, errs.ErrInvalidArgument):
		writeErr(w, http.StatusBadRequest, err.Error(), "invalid_argument")
	case errors.Is(err, errs.ErrInvalidAmount):
		writeErr(w, http.StatusUnprocessableEntity, err.Error(), "invalid_amount")
	case errors.Is(err, errs.ErrWrongKind):
		writeErr(w, http.StatusUnprocessableEntity, err.Error(), "wrong_account_kind")
	case errors.Is(err, errs.ErrInsufficientFunds):
		writeErr(w, http.StatusConflict, err.Error(), "insufficient_funds")
	case errors.Is(err, errs.ErrOverdraftLimit):
		writeErr(w, http.StatusConflict, err.Error(), "overdraft_limit_exceeded")
	default:
		writeErr(w, http.StatusInternalServerError, "internal_error", "internal_error")
	}
}
