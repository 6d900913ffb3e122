package processor

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/report"
)

var moneyMarketFloor = decimal.NewFromInt(2000)

// deposit handles D: account number, amount. A successful deposit appends a
// non-batch activity dated today at the account's home branch.
func (p *Processor) deposit(tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(p.out, "Missing data tokens for the deposit.")
		return
	}
	number := tokens[1]
	amount, ok := p.parseAmount(tokens[2])
	if !ok {
		return
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		fmt.Fprintf(p.out, "%s - deposit amount cannot be 0 or negative.\n", tokens[2])
		return
	}

	a, err := p.reg.ByNumber(number)
	if err != nil {
		fmt.Fprintf(p.out, "%s does not exist.\n", number)
		return
	}

	if err := a.Deposit(amount); err != nil {
		fmt.Fprintf(p.out, "%s - deposit amount cannot be 0 or negative.\n", tokens[2])
		return
	}
	a.AddActivity(domain.NewActivity(p.today(), a.Number.Branch, domain.ActivityDeposit, amount, false))
	fmt.Fprintf(p.out, "$%s deposited to %s\n", report.FormatAmount(amount), number)

	p.loyal.RecomputeMoneyMarket(a)
}

// withdraw handles W: account number, amount. Insufficient funds is reported
// and leaves the account untouched; money market accounts under $2,000 get
// the more specific message.
func (p *Processor) withdraw(tokens []string) {
	if len(tokens) < 3 {
		fmt.Fprintln(p.out, "Missing data tokens for the withdrawal.")
		return
	}
	number := tokens[1]
	amount, ok := p.parseAmount(tokens[2])
	if !ok {
		return
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		fmt.Fprintf(p.out, "%s withdrawal amount cannot be 0 or negative.\n", tokens[2])
		return
	}

	a, err := p.reg.ByNumber(number)
	if err != nil {
		fmt.Fprintf(p.out, "%s does not exist.\n", number)
		return
	}

	isMoneyMarket := a.Type() == domain.TypeMoneyMarket
	if err := a.Withdraw(amount); err != nil {
		if isMoneyMarket && a.Balance.LessThan(moneyMarketFloor) {
			fmt.Fprintf(p.out, "%s balance below $2,000 - withdrawing $%s - insufficient funds.\n",
				number, report.FormatAmount(amount))
		} else {
			fmt.Fprintf(p.out, "%s - insufficient funds.\n", number)
		}
		return
	}

	a.AddActivity(domain.NewActivity(p.today(), a.Number.Branch, domain.ActivityWithdrawal, amount, false))
	if isMoneyMarket && a.Balance.LessThan(moneyMarketFloor) {
		fmt.Fprintf(p.out, "%s balance below $2,000 - $%s withdrawn from %s\n",
			number, report.FormatAmount(amount), number)
	} else {
		fmt.Fprintf(p.out, "$%s withdrawn from %s\n", report.FormatAmount(amount), number)
	}

	p.loyal.RecomputeMoneyMarket(a)
}
