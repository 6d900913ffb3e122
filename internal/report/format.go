package report

import (
	"fmt"
	"strings"

	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with thousands separators and two decimal
// places, as in "1,234.50".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(whole) % 3
	if lead > 0 {
		b.WriteString(whole[:lead])
		if len(whole) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(whole); i += 3 {
		b.WriteString(whole[i : i+3])
		if i+3 < len(whole) {
			b.WriteByte(',')
		}
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// ActivityLine renders one activity entry, e.g.
// "2/5/2025::PRINCETON[ATM]::withdrawal::$500.00". The [ATM] suffix appears
// only for batch-sourced entries.
func ActivityLine(act domain.Activity) string {
	atm := ""
	if act.ATM {
		atm = "[ATM]"
	}
	return fmt.Sprintf("%s::%s%s::%s::$%s", act.Date, act.Location, atm, act.Kind, FormatAmount(act.Amount))
}

// AccountLine renders the account's string form with its variant suffix. The
// balance here is printed without grouping; grouped amounts appear only in
// activity and statement lines.
func AccountLine(a *domain.Account) string {
	base := fmt.Sprintf("Account#[%s] Holder[%s] Balance[$%s] Branch [%s]",
		a.Number, a.Holder, a.Balance.StringFixed(2), a.Number.Branch)

	switch a.Type() {
	case domain.TypeSavings:
		if a.Loyal {
			return base + " [LOYAL]"
		}
		return base
	case domain.TypeMoneyMarket:
		line := fmt.Sprintf("%s Withdrawal[%d]", base, a.Withdrawals)
		if a.Loyal {
			line += " [LOYAL]"
		}
		return line
	case domain.TypeCollegeChecking:
		return fmt.Sprintf("%s Campus[%s]", base, a.Campus)
	case domain.TypeCD:
		return fmt.Sprintf("%s Term[%d] Date opened[%s] Maturity date[%s]",
			base, a.Term, a.Opened, a.MaturityDate())
	default:
		return base
	}
}
