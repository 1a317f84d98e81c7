package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/smartbank/ledger/internal/bank"
)

func (s *Server) postDeposit(w http.ResponseWriter, r *http.Request) {
	s.mutateAccount(w, r, s.svc.Deposit)
}

func (s *Server) postWithdraw(w http.ResponseWriter, r *http.Request) {
	s.mutateAccount(w, r, s.svc.Withdraw)
}

func (s *Server) postRepay(w http.ResponseWriter, r *http.Request) {
	s.mutateAccount(w, r, s.svc.RepayLoan)
}

// mutateAccount handles the shared shape of the single-account money
// operations: parse the account number and amount, run the operation, and
// report the new balance with a fresh reference.
func (s *Server) mutateAccount(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, number int, amount float64) (bank.Account, error)) {
	number, ok := accountNumberParam(w, r)
	if !ok {
		return
	}
	if !requireJSON(w, r) {
		return
	}
	var req amountRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	acc, err := op(r.Context(), number, req.Amount)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, transactionResponse{
		Reference:     uuid.New(),
		AccountNumber: acc.Number(),
		Balance:       acc.Balance(),
	})
}

func (s *Server) postTransfer(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	src, dst, err := s.svc.Transfer(r.Context(), req.From, req.To, req.Amount)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, transferResponse{
		Reference:   uuid.New(),
		From:        src.Number(),
		To:          dst.Number(),
		FromBalance: src.Balance(),
		ToBalance:   dst.Balance(),
	})
}

func (s *Server) postMonthEnd(w http.ResponseWriter, r *http.Request) {
	processed := s.svc.ProcessMonthEnd(r.Context())
	toJSON(w, http.StatusOK, monthEndResponse{Processed: processed})
}

func (s *Server) getStatements(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}
	lines, err := s.svc.Statements(limit)
	if err != nil {
		s.log.Error("statement tail failed", "err", err)
		writeErr(w, http.StatusInternalServerError, "could not read statements", "internal_error")
		return
	}
	toJSON(w, http.StatusOK, statementsResponse{Lines: lines})
}
