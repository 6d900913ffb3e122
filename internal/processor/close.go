package processor

import (
	"fmt"

	"github.com/jbaiden/bankledger/internal/closing"
	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/report"
)

// closeAccount handles C: close date followed by either an account number or
// a holder's first name, last name, and date of birth. Interest (and any
// certificate penalty) is computed as of the close date and reported; the
// archived balance stays as it was at the last transaction.
func (p *Processor) closeAccount(tokens []string) {
	if len(tokens) < 2 {
		fmt.Fprintln(p.out, "Missing data for closing an account.")
		return
	}

	closeDate, err := domain.ParseDate(tokens[1])
	if err != nil || !closeDate.IsValid() {
		fmt.Fprintf(p.out, "Close date invalid: %s\n", tokens[1])
		return
	}

	switch len(tokens) {
	case 3:
		p.closeSingle(tokens[2], closeDate)
	case 5:
		p.closeHolder(tokens[2], tokens[3], tokens[4], closeDate)
	default:
		fmt.Fprintln(p.out, "Invalid format for closing an account.")
	}
}

func (p *Processor) closeSingle(number string, closeDate domain.Date) {
	a, err := p.reg.ByNumber(number)
	if err != nil {
		fmt.Fprintf(p.out, "%s account does not exist.\n", number)
		return
	}

	res := closing.Calculate(a, closeDate)
	if _, err := p.reg.Close(number, closeDate); err != nil {
		fmt.Fprintf(p.out, "%s account does not exist.\n", number)
		return
	}

	fmt.Fprintf(p.out, "%s is closed and moved to archive;\n", number)
	p.printCloseResult(res, a.Type())

	if a.Type() == domain.TypeChecking {
		p.loyal.RecomputeSavings(a.Holder)
	}
}

func (p *Processor) closeHolder(first, last, dobToken string, closeDate domain.Date) {
	dob, err := domain.ParseDate(dobToken)
	if err != nil || !dob.IsValid() {
		fmt.Fprintf(p.out, "%s %s %s invalid DOB!\n", first, last, dobToken)
		return
	}
	holder := domain.NewProfile(first, last, dob)

	closed := p.reg.CloseAllForHolder(holder, closeDate)
	if len(closed) == 0 {
		fmt.Fprintf(p.out, "%s does not have any accounts in the database.\n", holder)
		return
	}

	fmt.Fprintf(p.out, "All accounts for %s are closed and moved to archive;\n", holder)
	hadChecking := false
	for _, a := range closed {
		res := closing.Calculate(a, closeDate)
		fmt.Fprintf(p.out, "\t%s [interest] $%s", a.Number, report.FormatAmount(res.Interest))
		if a.Type() == domain.TypeCD && res.Penalty.IsPositive() {
			fmt.Fprintf(p.out, " [penalty] $%s", report.FormatAmount(res.Penalty))
		}
		fmt.Fprintln(p.out)
		if a.Type() == domain.TypeChecking {
			hadChecking = true
		}
	}
	if hadChecking {
		p.loyal.RecomputeSavings(holder)
	}
}

func (p *Processor) printCloseResult(res closing.Result, accountType domain.AccountType) {
	fmt.Fprintf(p.out, "\t[interest] $%s\n", report.FormatAmount(res.Interest))
	if accountType == domain.TypeCD && res.Penalty.IsPositive() {
		fmt.Fprintf(p.out, "\t[penalty] $%s\n", report.FormatAmount(res.Penalty))
	}
}
