package processor

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jbaiden/bankledger/internal/domain"
)

// Parsing helpers. Each reports the user-facing message itself and returns
// ok=false; handlers abort without further output.

func (p *Processor) parseDOB(token string) (domain.Date, bool) {
	dob, err := domain.ParseDate(token)
	if err != nil || !dob.IsValid() {
		fmt.Fprintf(p.out, "DOB invalid: %s not a valid calendar date!\n", token)
		return domain.Date{}, false
	}
	if dob.IsFuture() {
		fmt.Fprintf(p.out, "DOB invalid: %s cannot be today or a future day.\n", token)
		return domain.Date{}, false
	}
	if dob.Age() < 18 {
		fmt.Fprintf(p.out, "Not eligible to open: %s under 18.\n", token)
		return domain.Date{}, false
	}
	return dob, true
}

// parseOpenDate validates a certificate open date: calendar-valid and not in
// the future, with no age semantics attached.
func (p *Processor) parseOpenDate(token string) (domain.Date, bool) {
	d, err := domain.ParseDate(token)
	if err != nil || !d.IsValid() {
		fmt.Fprintf(p.out, "Date invalid: %s not a valid calendar date!\n", token)
		return domain.Date{}, false
	}
	if d.IsFuture() {
		fmt.Fprintf(p.out, "Date invalid: %s cannot be today or a future day.\n", token)
		return domain.Date{}, false
	}
	return d, true
}

func (p *Processor) parseAmount(token string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(token)
	if err != nil {
		fmt.Fprintf(p.out, "For input string: %q - not a valid amount.\n", token)
		return decimal.Decimal{}, false
	}
	return amount, true
}

// parseOpenDeposit parses an initial deposit and enforces the per-type
// opening minimums.
func (p *Processor) parseOpenDeposit(token string, accountType domain.AccountType) (decimal.Decimal, bool) {
	deposit, ok := p.parseAmount(token)
	if !ok {
		return decimal.Decimal{}, false
	}
	if deposit.LessThanOrEqual(decimal.Zero) {
		fmt.Fprintln(p.out, "Initial deposit cannot be 0 or negative.")
		return decimal.Decimal{}, false
	}
	if accountType == domain.TypeMoneyMarket && deposit.LessThan(domain.MinDepositMoneyMarket) {
		fmt.Fprintln(p.out, "Minimum of $2,000 to open a Money Market account.")
		return decimal.Decimal{}, false
	}
	if accountType == domain.TypeCD && deposit.LessThan(domain.MinDepositCD) {
		fmt.Fprintln(p.out, "Minimum of $1,000 to open a Certificate Deposit account.")
		return decimal.Decimal{}, false
	}
	return deposit, true
}

func (p *Processor) parseCampus(token string) (domain.Campus, bool) {
	code, err := strconv.Atoi(token)
	if err != nil {
		fmt.Fprintf(p.out, "%s - invalid campus code.\n", token)
		return "", false
	}
	campus, err := domain.ParseCampus(code)
	if err != nil {
		fmt.Fprintf(p.out, "%d is not a valid campus code (1,2,3).\n", code)
		return "", false
	}
	return campus, true
}

func (p *Processor) parseTerm(token string) (int, bool) {
	term, err := strconv.Atoi(token)
	if err != nil {
		fmt.Fprintf(p.out, "%s - invalid term (3,6,9,12).\n", token)
		return 0, false
	}
	if !domain.ValidCDTerm(term) {
		fmt.Fprintf(p.out, "%d is not a valid term.\n", term)
		return 0, false
	}
	return term, true
}
