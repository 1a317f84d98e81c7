package httpapi

import (
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/smartbank/ledger/internal/service/ledger"
)

func (s *Server) postAccount(w http.ResponseWriter, r *http.Request) {
	if !requireJSON(w, r) {
		return
	}
	var req createAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	kind, err := parseKind(req.Kind)
	if err != nil {
		badRequest(w, "kind must be one of savings, current, loan")
		return
	}
	features, err := parseFeatures(req.Features)
	if err != nil {
		badRequest(w, "features must be any of overdraft, sms_alert, premium")
		return
	}
	acc, err := s.svc.CreateAccount(r.Context(), ledger.CreateParams{
		Kind:     kind,
		Holder:   req.HolderName,
		Amount:   req.Amount,
		Features: features,
		Rate:     req.Rate,
		Months:   req.Months,
	})
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusCreated, toAccountResponse(acc))
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	accs := s.svc.ListAccounts(r.Context())
	out := make([]accountResponse, 0, len(accs))
	for _, a := range accs {
		out = append(out, toAccountResponse(a))
	}
	toJSON(w, http.StatusOK, out)
}

func (s *Server) getAccount(w http.ResponseWriter, r *http.Request) {
	number, ok := accountNumberParam(w, r)
	if !ok {
		return
	}
	acc, err := s.svc.GetAccount(r.Context(), number)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	toJSON(w, http.StatusOK, toAccountResponse(acc))
}

// accountNumberParam parses the {number} route parameter. Writes 400 and
// reports ok=false when it is not an integer.
func accountNumberParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "number")
	number, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(w, "invalid account number")
		return 0, false
	}
	return number, true
}
