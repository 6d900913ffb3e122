// Package report renders the account and statement reports. All output goes
// through an io.Writer; nothing here decides business rules beyond the
// interest/fee posting that a statement has always performed.
package report

import (
	"fmt"
	"io"

	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/registry"
)

// WriteArchive lists the closed accounts with their close dates.
func WriteArchive(w io.Writer, closed []registry.Closed) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "*List of closed accounts in the archive.")
	for _, c := range closed {
		fmt.Fprintf(w, "%s Closed[%s]\n", AccountLine(c.Account), c.ClosedOn)
	}
	fmt.Fprintln(w, "*end of list.")
	fmt.Fprintln(w)
}

// WriteByBranch lists accounts grouped under county headers.
func WriteByBranch(w io.Writer, accounts []*domain.Account) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "*List of accounts ordered by branch location (county, city).")
	county := ""
	for _, a := range accounts {
		if c := a.Number.Branch.County(); c != county {
			county = c
			fmt.Fprintf(w, "County: %s\n", c)
		}
		fmt.Fprintln(w, AccountLine(a))
	}
	fmt.Fprintln(w, "*end of list.")
	fmt.Fprintln(w)
}

// WriteByHolder lists accounts in holder order.
func WriteByHolder(w io.Writer, accounts []*domain.Account) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "*List of accounts ordered by account holder and number.")
	for _, a := range accounts {
		fmt.Fprintln(w, AccountLine(a))
	}
	fmt.Fprintln(w, "*end of list.")
	fmt.Fprintln(w)
}

// WriteByType lists accounts grouped under account type headers.
func WriteByType(w io.Writer, accounts []*domain.Account) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "*List of accounts ordered by account type and number.")
	var current domain.AccountType
	for _, a := range accounts {
		if t := a.Type(); t != current {
			current = t
			fmt.Fprintf(w, "Account Type: %s\n", t)
		}
		fmt.Fprintln(w, AccountLine(a))
	}
	fmt.Fprintln(w, "*end of list.")
	fmt.Fprintln(w)
}

// WriteStatements prints each holder's accounts with their activity, then
// posts the monthly interest and fee to every balance. Accounts must already
// be in holder order.
func WriteStatements(w io.Writer, accounts []*domain.Account) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "*Account statements by account holder.")
	var current *domain.Profile
	holderCount := 0
	for _, a := range accounts {
		if current == nil || !current.Equal(a.Holder) {
			holder := a.Holder
			current = &holder
			holderCount++
			fmt.Fprintf(w, "%d.%s\n", holderCount, holder)
		}
		fmt.Fprintf(w, "\t[Account#] %s\n", a.Number)
		writeStatement(w, a)
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "*end of statements.")
	fmt.Fprintln(w)
}

func writeStatement(w io.Writer, a *domain.Account) {
	if len(a.Activities) == 0 {
		fmt.Fprintln(w, "\t[Activity] No transactions")
	} else {
		fmt.Fprintln(w, "\t[Activity]")
		for _, act := range a.Activities {
			fmt.Fprintf(w, "\t\t%s\n", ActivityLine(act))
		}
	}
	res := a.PostStatement()
	fmt.Fprintf(w, "\t[interest] $%s [Fee] $%s\n", FormatAmount(res.Interest), FormatAmount(res.Fee))
	fmt.Fprintf(w, "\t[Balance] $%s\n", FormatAmount(res.Balance))
}
