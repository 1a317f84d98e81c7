package httpapi

import (
	"strings"

	"github.com/google/uuid"

	"github.com/smartbank/ledger/internal/bank"
	"github.com/smartbank/ledger/internal/errs"
)

type createAccountRequest struct {
	Kind       string   `json:"kind"`
	HolderName string   `json:"holder_name"`
	// Amount is the opening deposit, or the principal for loans.
	Amount   float64  `json:"amount"`
	Features []string `json:"features,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Months   *int     `json:"months,omitempty"`
}

type accountResponse struct {
	Number          int      `json:"number"`
	Kind            string   `json:"kind"`
	HolderName      string   `json:"holder_name"`
	Balance         float64  `json:"balance"`
	Features        []string `json:"features,omitempty"`
	Rate            *float64 `json:"rate,omitempty"`
	MonthsRemaining *int     `json:"months_remaining,omitempty"`
	Display         string   `json:"display"`
}

type amountRequest struct {
	Amount float64 `json:"amount"`
}

// transactionResponse reports the result of a single-account mutation. The
// reference is generated per request so callers can correlate logs.
type transactionResponse struct {
	Reference     uuid.UUID `json:"reference"`
	AccountNumber int       `json:"account_number"`
	Balance       float64   `json:"balance"`
}

type transferRequest struct {
	From   int     `json:"from"`
	To     int     `json:"to"`
	Amount float64 `json:"amount"`
}

type transferResponse struct {
	Reference   uuid.UUID `json:"reference"`
	From        int       `json:"from"`
	To          int       `json:"to"`
	FromBalance float64   `json:"from_balance"`
	ToBalance   float64   `json:"to_balance"`
}

type monthEndResponse struct {
	Processed int `json:"processed"`
}

type statementsResponse struct {
	Lines []string `json:"lines"`
}

// parseKind maps a request kind string onto the closed kind set.
func parseKind(s string) (bank.Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(bank.KindSavings):
		return bank.KindSavings, nil
	case string(bank.KindCurrent):
		return bank.KindCurrent, nil
	case string(bank.KindLoan):
		return bank.KindLoan, nil
	default:
		return "", errs.ErrInvalidArgument
	}
}

// parseFeatures maps request feature names onto the bitmask.
func parseFeatures(names []string) (bank.FeatureSet, error) {
	var f bank.FeatureSet
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "overdraft":
			f |= bank.FeatureOverdraft
		case "sms_alert":
			f |= bank.FeatureSMSAlert
		case "premium":
			f |= bank.FeaturePremium
		default:
			return 0, errs.ErrInvalidArgument
		}
	}
	return f, nil
}

func featureNames(f bank.FeatureSet) []string {
	var names []string
	if f.Has(bank.FeatureOverdraft) {
		names = append(names, "overdraft")
	}
	if f.Has(bank.FeatureSMSAlert) {
		names = append(names, "sms_alert")
	}
	if f.Has(bank.FeaturePremium) {
		names = append(names, "premium")
	}
	return names
}

func toAccountResponse(a bank.Account) accountResponse {
	resp := accountResponse{
		Number:     a.Number(),
		Kind:       string(a.Kind()),
		HolderName: a.Holder(),
		Balance:    a.Balance(),
		Features:   featureNames(a.Features()),
		Display:    a.String(),
	}
	switch acc := a.(type) {
	case *bank.Savings:
		rate := acc.Rate()
		resp.Rate = &rate
	case *bank.Loan:
		rate := acc.Rate()
		months := acc.MonthsRemaining()
		resp.Rate = &rate
		resp.MonthsRemaining = &months
	}
	return resp
}
