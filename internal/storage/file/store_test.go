package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/smartbank/ledger/internal/bank"
)

func mustAccount(t *testing.T, kind bank.Kind, number int, holder string, amount float64, features bank.FeatureSet, p bank.Params) bank.Account {
	t.Helper()
	acc, err := bank.New(kind, number, holder, amount, features, p)
	if err != nil {
		t.Fatalf("New(%s): %v", kind, err)
	}
	acc.DrainStatements()
	return acc
}

// row captures the semantic content of a record for comparisons.
type row struct {
	Number   int
	Kind     bank.Kind
	Holder   string
	Balance  float64
	Features bank.FeatureSet
	Extra    string
}

func toRow(a bank.Account) row {
	return row{
		Number:   a.Number(),
		Kind:     a.Kind(),
		Holder:   a.Holder(),
		Balance:  a.Balance(),
		Features: a.Features(),
		Extra:    a.Extra(),
	}
}

func TestEncodeFormat(t *testing.T) {
	rate := 0.04
	sv := mustAccount(t, bank.KindSavings, 1001, "Alice Smith", 1000, bank.FeatureOverdraft, bank.Params{Rate: &rate})
	if got, want := Encode(sv), "1001,SAVINGS,Alice Smith,1000.000000,1,rate=0.0400"; got != want {
		t.Fatalf("Encode savings = %q, want %q", got, want)
	}

	cu := mustAccount(t, bank.KindCurrent, 1002, "Bob", 500, 0, bank.Params{})
	if got, want := Encode(cu), "1002,CURRENT,Bob,500.000000,0,"; got != want {
		t.Fatalf("Encode current = %q, want %q", got, want)
	}

	months, lrate := 11, 0.12
	ln := mustAccount(t, bank.KindLoan, 1003, "Carol", 1200, 0, bank.Params{Rate: &lrate, Months: &months})
	if got, want := Encode(ln), "1003,LOAN,Carol,-1200.000000,0,months=11,rate=0.1200"; got != want {
		t.Fatalf("Encode loan = %q, want %q", got, want)
	}
}

func TestEncodeSanitizesHolderName(t *testing.T) {
	acc := mustAccount(t, bank.KindCurrent, 1001, "Smith, Alice", 100, 0, bank.Params{})
	line := Encode(acc)
	dec, ok := Decode(line)
	if !ok {
		t.Fatalf("decode of %q failed", line)
	}
	if got := dec.Holder(); got != "Smith  Alice" {
		t.Fatalf("holder = %q, want commas replaced by spaces", got)
	}
}

func TestRoundTrip(t *testing.T) {
	rate := 0.055
	months, lrate := 9, 0.15
	accounts := []bank.Account{
		mustAccount(t, bank.KindSavings, 1001, "Alice", 1234.56, bank.FeatureOverdraft|bank.FeatureSMSAlert, bank.Params{Rate: &rate}),
		mustAccount(t, bank.KindCurrent, 1002, "Bob", 0, bank.FeaturePremium, bank.Params{}),
		mustAccount(t, bank.KindLoan, 1003, "Carol", 1200, 0, bank.Params{Rate: &lrate, Months: &months}),
	}
	for _, a := range accounts {
		dec, ok := Decode(Encode(a))
		if !ok {
			t.Fatalf("decode of %q failed", Encode(a))
		}
		if diff := cmp.Diff(toRow(a), toRow(dec)); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDecodeTolerance(t *testing.T) {
	for name, line := range map[string]string{
		"blank":        "   ",
		"short row":    "1001,SAVINGS,Alice",
		"unknown kind": "1001,FIXED,Alice,100.000000,0,",
		"bad number":   "abc,SAVINGS,Alice,100.000000,0,",
		"bad balance":  "1001,SAVINGS,Alice,money,0,",
		"bad features": "1001,SAVINGS,Alice,100.000000,lots,",
	} {
		if _, ok := Decode(line); ok {
			t.Fatalf("%s: Decode(%q) succeeded, want skip", name, line)
		}
	}
}

func TestDecodeExtensionDefaults(t *testing.T) {
	sv, ok := Decode("1001,SAVINGS,Alice,100.000000,0")
	if !ok {
		t.Fatalf("decode without extra failed")
	}
	if got := sv.(*bank.Savings).Rate(); got != bank.DefaultSavingsRate {
		t.Fatalf("savings rate = %v, want default %v", got, bank.DefaultSavingsRate)
	}

	ln, ok := Decode("1002,LOAN,Bob,-900.000000,0,")
	if !ok {
		t.Fatalf("decode loan without extra failed")
	}
	loan := ln.(*bank.Loan)
	if loan.Rate() != bank.DefaultLoanRate || loan.MonthsRemaining() != bank.DefaultLoanMonths {
		t.Fatalf("loan defaults = (%v, %d), want (%v, %d)",
			loan.Rate(), loan.MonthsRemaining(), bank.DefaultLoanRate, bank.DefaultLoanMonths)
	}

	// malformed extension values also fall back
	sv2, ok := Decode("1003,SAVINGS,Eve,50.000000,0,rate=high")
	if !ok {
		t.Fatalf("decode with bad extension failed")
	}
	if got := sv2.(*bank.Savings).Rate(); got != bank.DefaultSavingsRate {
		t.Fatalf("rate = %v, want default", got)
	}
}

// A restored loan's principal comes from the stored balance magnitude, which
// includes any interest accrued before the save.
func TestDecodeLoanPrincipalFromStoredBalance(t *testing.T) {
	acc, ok := Decode("1004,LOAN,Carol,-1210.500000,0,months=11,rate=0.1200")
	if !ok {
		t.Fatalf("decode failed")
	}
	loan := acc.(*bank.Loan)
	if got := loan.Balance(); got != -1210.5 {
		t.Fatalf("balance = %v, want -1210.5", got)
	}
	if got := loan.Principal(); got != 1210.5 {
		t.Fatalf("principal = %v, want 1210.5", got)
	}
	if got := loan.MonthsRemaining(); got != 11 {
		t.Fatalf("months = %d, want 11", got)
	}
}

func TestStoreRewriteAndLoad(t *testing.T) {
	ctx := context.Background()
	store := New(filepath.Join(t.TempDir(), "accounts.dat"))

	accounts := []bank.Account{
		mustAccount(t, bank.KindSavings, 1001, "Alice", 1000, bank.FeatureOverdraft, bank.Params{}),
		mustAccount(t, bank.KindLoan, 1002, "Bob", 600, 0, bank.Params{}),
	}
	if err := store.Rewrite(ctx, accounts); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []row{toRow(accounts[0]), toRow(accounts[1])}
	got := make([]row, 0, len(loaded))
	for _, a := range loaded {
		got = append(got, toRow(a))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("load mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "accounts.dat"))
	accounts, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("missing store loaded %d accounts", len(accounts))
	}
}

func TestStoreLoadSkipsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.dat")
	content := "1001,SAVINGS,Alice,100.000000,0,rate=0.0400\n" +
		"not a record\n" +
		"\n" +
		"1002,CURRENT,Bob,50.000000,0,\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	accounts, err := New(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("loaded %d accounts, want 2", len(accounts))
	}
	if accounts[0].Number() != 1001 || accounts[1].Number() != 1002 {
		t.Fatalf("unexpected accounts: %v, %v", accounts[0].Number(), accounts[1].Number())
	}
}
