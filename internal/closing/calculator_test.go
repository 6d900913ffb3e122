package closing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/testutil"
)

func dailyInterest(balance, annual string, days int) decimal.Decimal {
	return testutil.Amount(balance).
		Mul(testutil.Amount(annual).Div(decimal.NewFromInt(365))).
		Mul(decimal.NewFromInt(int64(days)))
}

func newCD(t *testing.T, balance string, term int, opened domain.Date) *domain.Account {
	t.Helper()
	number := domain.NewAccountNumber(domain.BranchEdison, domain.TypeCD, 1)
	return domain.NewCertificateDeposit(number, testutil.Holder(t, "John", "Doe", "1/1/1990"), testutil.Amount(balance), term, opened)
}

func TestCalculateCertificateSameDayClose(t *testing.T) {
	cd := newCD(t, "1000", 12, domain.NewDate(1, 1, 2024))

	res := Calculate(cd, domain.NewDate(1, 1, 2024))
	assert.True(t, res.Interest.IsZero(), "zero days accrue nothing")
	assert.True(t, res.Penalty.IsZero())
}

func TestCalculateCertificateEarlyClose(t *testing.T) {
	tests := []struct {
		name        string
		term        int
		closeDate   domain.Date
		days        int
		steppedRate string
	}{
		// Opened 1/1/2024 in every case.
		{"two months in uses the 3% step", 12, domain.NewDate(3, 1, 2024), 60, "0.03"},
		{"six months in still 3%", 12, domain.NewDate(6, 29, 2024), 180, "0.03"},
		{"seven months in moves to 3.25%", 12, domain.NewDate(7, 31, 2024), 212, "0.0325"},
		{"ten months in moves to 3.5%", 12, domain.NewDate(10, 28, 2024), 301, "0.035"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cd := newCD(t, "1000", tc.term, domain.NewDate(1, 1, 2024))
			res := Calculate(cd, tc.closeDate)

			wantInterest := dailyInterest("1000", tc.steppedRate, tc.days)
			assert.True(t, res.Interest.Equal(wantInterest), "interest: got %s, want %s", res.Interest, wantInterest)

			wantPenalty := res.Interest.Mul(testutil.Amount("0.10"))
			assert.True(t, res.Penalty.Equal(wantPenalty), "penalty is exactly 10%% of interest: got %s", res.Penalty)
			assert.True(t, res.Penalty.IsPositive())
		})
	}
}

func TestCalculateCertificateMaturedClose(t *testing.T) {
	cd := newCD(t, "1000", 12, domain.NewDate(1, 1, 2024))

	// 366 days elapsed, past the 360-day approximation of the term.
	res := Calculate(cd, domain.NewDate(1, 1, 2025))
	want := dailyInterest("1000", "0.04", 366)
	assert.True(t, res.Interest.Equal(want), "interest: got %s, want %s", res.Interest, want)
	assert.True(t, res.Penalty.IsZero(), "no penalty at or past maturity")
}

func TestCalculateCertificateMaturityBoundary(t *testing.T) {
	// 3-month term matures at 90 days under the 30-day approximation.
	cd := newCD(t, "2000", 3, domain.NewDate(1, 1, 2024))

	early := Calculate(cd, domain.NewDate(3, 30, 2024)) // 89 days
	assert.True(t, early.Penalty.IsPositive())

	matured := Calculate(cd, domain.NewDate(3, 31, 2024)) // 90 days
	assert.True(t, matured.Penalty.IsZero())
	want := dailyInterest("2000", "0.03", 90)
	assert.True(t, matured.Interest.Equal(want), "interest: got %s, want %s", matured.Interest, want)
}

func TestCalculateNonCertificate(t *testing.T) {
	number := domain.NewAccountNumber(domain.BranchEdison, domain.TypeSavings, 1)
	holder := testutil.Holder(t, "John", "Doe", "1/1/1990")

	savings := domain.NewSavings(number, holder, testutil.Amount("1000"))
	res := Calculate(savings, domain.NewDate(6, 15, 2025))
	want := dailyInterest("1000", "0.025", 15)
	require.True(t, res.Interest.Equal(want), "interest: got %s, want %s", res.Interest, want)
	assert.True(t, res.Penalty.IsZero())

	savings.Loyal = true
	loyalRes := Calculate(savings, domain.NewDate(6, 15, 2025))
	loyalWant := dailyInterest("1000", "0.0275", 15)
	assert.True(t, loyalRes.Interest.Equal(loyalWant), "loyal rate applies at close: got %s", loyalRes.Interest)
}
