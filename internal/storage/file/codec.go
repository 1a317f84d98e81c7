package file

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/smartbank/ledger/internal/bank"
)

// Encode renders one account as a store row:
//
//	accNo,KIND,name,balance,features,extra
//
// The balance keeps six decimal digits, the feature bitmask is an integer,
// and extra is the kind's key=value extension (empty for current accounts).
// Commas in the holder name are replaced with spaces; the row format has no
// escaping scheme.
func Encode(a bank.Account) string {
	return fmt.Sprintf("%d,%s,%s,%.6f,%d,%s",
		a.Number(), a.Kind(), sanitizeName(a.Holder()), a.Balance(), int(a.Features()), a.Extra())
}

func sanitizeName(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}

// Decode parses one store row back into an account. It reports ok=false for
// rows to be skipped: blank lines, short rows, unknown kind tags, and rows
// whose number, balance, or features fields do not parse. Missing or
// malformed extension keys fall back to the kind defaults.
func Decode(line string) (bank.Account, bool) {
	if strings.TrimSpace(line) == "" {
		return nil, false
	}
	parts := strings.SplitN(line, ",", 6)
	if len(parts) < 5 {
		return nil, false
	}
	number, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, false
	}
	kind := bank.Kind(strings.ToUpper(parts[1]))
	holder := parts[2]
	balance, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return nil, false
	}
	features, err := strconv.Atoi(parts[4])
	if err != nil {
		return nil, false
	}
	var extra string
	if len(parts) == 6 {
		extra = parts[5]
	}
	return bank.Restore(kind, number, holder, balance, bank.FeatureSet(features), ParseExtra(extra))
}

// ParseExtra parses a row's key=value extension field into kind parameters.
// Unknown keys and unparseable values are ignored so the kind defaults apply.
func ParseExtra(extra string) bank.Params {
	var p bank.Params
	for _, token := range strings.Split(extra, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(token), "=")
		if !ok {
			continue
		}
		switch key {
		case "rate":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				p.Rate = &v
			}
		case "months":
			if v, err := strconv.Atoi(value); err == nil {
				p.Months = &v
			}
		}
	}
	return p
}
