package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/registry"
	"github.com/jbaiden/bankledger/internal/testutil"
)

func TestWriteStatementsPostsInterestAndFee(t *testing.T) {
	holder := testutil.Holder(t, "John", "Doe", "1/1/1990")
	a := domain.NewChecking(testutil.Number(domain.BranchEdison, domain.TypeChecking, 1), holder, testutil.Amount("2500"))
	a.AddActivity(domain.NewActivity(domain.NewDate(2, 1, 2025), domain.BranchEdison, domain.ActivityDeposit, testutil.Amount("500"), false))

	var buf bytes.Buffer
	WriteStatements(&buf, []*domain.Account{a})

	want := "\n*Account statements by account holder.\n" +
		"1.John Doe 1/1/1990\n" +
		"\t[Account#] 100010001\n" +
		"\t[Activity]\n" +
		"\t\t2/1/2025::EDISON::deposit::$500.00\n" +
		"\t[interest] $3.13 [Fee] $0.00\n" +
		"\t[Balance] $2,503.13\n" +
		"\n" +
		"*end of statements.\n\n"
	assert.Equal(t, want, buf.String())
	assert.True(t, a.Balance.Equal(testutil.Amount("2503.125")), "statement posts interest minus fee")
}

func TestWriteStatementsNoTransactions(t *testing.T) {
	holder := testutil.Holder(t, "Kate", "Lindsey", "8/31/2001")
	a := domain.NewSavings(testutil.Number(domain.BranchWarren, domain.TypeSavings, 1), holder, testutil.Amount("400"))

	var buf bytes.Buffer
	WriteStatements(&buf, []*domain.Account{a})

	assert.Contains(t, buf.String(), "\t[Activity] No transactions\n")
	assert.Contains(t, buf.String(), "\t[interest] $0.83 [Fee] $25.00\n")
}

func TestWriteByTypeGroupsUnderHeaders(t *testing.T) {
	holder := testutil.Holder(t, "John", "Doe", "1/1/1990")
	checking := domain.NewChecking(testutil.Number(domain.BranchEdison, domain.TypeChecking, 1), holder, testutil.Amount("1000"))
	savings := domain.NewSavings(testutil.Number(domain.BranchEdison, domain.TypeSavings, 2), holder, testutil.Amount("1000"))

	var buf bytes.Buffer
	WriteByType(&buf, []*domain.Account{checking, savings})

	out := buf.String()
	assert.Contains(t, out, "Account Type: CHECKING\n")
	assert.Contains(t, out, "Account Type: SAVINGS\n")
	assert.Contains(t, out, "*List of accounts ordered by account type and number.\n")
	assert.Contains(t, out, "*end of list.\n")
}

func TestWriteArchive(t *testing.T) {
	holder := testutil.Holder(t, "John", "Doe", "1/1/1990")
	a := domain.NewChecking(testutil.Number(domain.BranchEdison, domain.TypeChecking, 1), holder, testutil.Amount("1000"))

	var buf bytes.Buffer
	WriteArchive(&buf, []registry.Closed{{Account: a, ClosedOn: domain.NewDate(6, 1, 2025)}})

	assert.Contains(t, buf.String(), "*List of closed accounts in the archive.\n")
	assert.Contains(t, buf.String(), "Closed[6/1/2025]")
}
