package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/testutil"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"500", "500.00"},
		{"1000", "1,000.00"},
		{"2503.125", "2,503.13"},
		{"1234567.8", "1,234,567.80"},
		{"999.994", "999.99"},
		{"-1500.5", "-1,500.50"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatAmount(testutil.Amount(tc.in)))
		})
	}
}

func TestActivityLine(t *testing.T) {
	atm := domain.NewActivity(domain.NewDate(2, 5, 2025), domain.BranchPrinceton, domain.ActivityWithdrawal, testutil.Amount("500"), true)
	assert.Equal(t, "2/5/2025::PRINCETON[ATM]::withdrawal::$500.00", ActivityLine(atm))

	counter := domain.NewActivity(domain.NewDate(2, 1, 2025), domain.BranchWarren, domain.ActivityDeposit, testutil.Amount("1250.5"), false)
	assert.Equal(t, "2/1/2025::WARREN::deposit::$1,250.50", ActivityLine(counter))
}

func TestAccountLine(t *testing.T) {
	holder := testutil.Holder(t, "John", "Doe", "1/1/1990")

	checking := domain.NewChecking(testutil.Number(domain.BranchEdison, domain.TypeChecking, 1), holder, testutil.Amount("2500"))
	assert.Equal(t,
		"Account#[100010001] Holder[John Doe 1/1/1990] Balance[$2500.00] Branch [EDISON]",
		AccountLine(checking))

	savings := domain.NewSavings(testutil.Number(domain.BranchWarren, domain.TypeSavings, 2), holder, testutil.Amount("700"))
	assert.Equal(t,
		"Account#[500020002] Holder[John Doe 1/1/1990] Balance[$700.00] Branch [WARREN]",
		AccountLine(savings))
	savings.Loyal = true
	assert.Equal(t,
		"Account#[500020002] Holder[John Doe 1/1/1990] Balance[$700.00] Branch [WARREN] [LOYAL]",
		AccountLine(savings))

	mm := domain.NewMoneyMarket(testutil.Number(domain.BranchPrinceton, domain.TypeMoneyMarket, 3), holder, testutil.Amount("5000"))
	mm.Loyal = true
	mm.Withdrawals = 2
	assert.Equal(t,
		"Account#[300030003] Holder[John Doe 1/1/1990] Balance[$5000.00] Branch [PRINCETON] Withdrawal[2] [LOYAL]",
		AccountLine(mm))

	college := domain.NewCollegeChecking(testutil.Number(domain.BranchPiscataway, domain.TypeCollegeChecking, 4), holder, testutil.Amount("100"), domain.CampusNewBrunswick)
	assert.Equal(t,
		"Account#[400040004] Holder[John Doe 1/1/1990] Balance[$100.00] Branch [PISCATAWAY] Campus[NEW_BRUNSWICK]",
		AccountLine(college))

	cd := domain.NewCertificateDeposit(testutil.Number(domain.BranchBridgewater, domain.TypeCD, 5), holder, testutil.Amount("1000"), 12, domain.NewDate(1, 15, 2024))
	assert.Equal(t,
		"Account#[200050005] Holder[John Doe 1/1/1990] Balance[$1000.00] Branch [BRIDGEWATER] Term[12] Date opened[1/15/2024] Maturity date[1/15/2025]",
		AccountLine(cd))
}
