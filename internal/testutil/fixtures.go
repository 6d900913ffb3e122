package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jbaiden/bankledger/internal/domain"
)

// MustDate parses an M/D/YYYY date and fails the test on malformed input.
func MustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func Holder(t *testing.T, first, last, dob string) domain.Profile {
	t.Helper()
	return domain.NewProfile(first, last, MustDate(t, dob))
}

func Amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Number(branch domain.Branch, accountType domain.AccountType, seq int) domain.AccountNumber {
	return domain.NewAccountNumber(branch, accountType, seq)
}
