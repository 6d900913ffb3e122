package processor

import (
	"fmt"

	"github.com/jbaiden/bankledger/internal/domain"
)

const collegeCheckingMaxAge = 24

// openAccount handles O: type, branch, first, last, dob, deposit, then the
// type-specific trailing fields. Fields are validated in order and the first
// failure aborts the command with no account created.
func (p *Processor) openAccount(tokens []string) {
	if len(tokens) < 6 {
		fmt.Fprintln(p.out, "Missing data for opening an account.")
		return
	}

	accountType, err := domain.ParseAccountType(tokens[1])
	if err != nil {
		fmt.Fprintf(p.out, "%s - invalid account type.\n", tokens[1])
		return
	}
	branch, err := domain.ParseBranch(tokens[2])
	if err != nil {
		fmt.Fprintf(p.out, "%s - invalid branch.\n", tokens[2])
		return
	}
	dob, ok := p.parseDOB(tokens[5])
	if !ok {
		return
	}
	holder := domain.NewProfile(tokens[3], tokens[4], dob)

	a, ok := p.buildAccount(tokens, accountType, branch, holder)
	if !ok {
		return
	}

	if accountType != domain.TypeCD && p.reg.HasAccountOfType(holder, accountType) {
		fmt.Fprintf(p.out, "%s %s already has a %s account.\n", holder.FirstName, holder.LastName, accountType)
		return
	}

	if err := p.reg.Add(a); err != nil {
		fmt.Fprintln(p.out, "Invalid command!")
		return
	}

	switch accountType {
	case domain.TypeChecking, domain.TypeCollegeChecking:
		p.loyal.RecomputeSavings(holder)
	case domain.TypeSavings:
		p.loyal.RecomputeSavings(holder)
	case domain.TypeMoneyMarket:
		p.loyal.RecomputeMoneyMarket(a)
	}

	fmt.Fprintf(p.out, "%s account %s has been opened.\n", accountType, a.Number)
}

func (p *Processor) buildAccount(tokens []string, accountType domain.AccountType, branch domain.Branch, holder domain.Profile) (*domain.Account, bool) {
	switch accountType {
	case domain.TypeChecking, domain.TypeSavings, domain.TypeMoneyMarket:
		if len(tokens) < 7 {
			fmt.Fprintln(p.out, "Missing data tokens for opening an account.")
			return nil, false
		}
		deposit, ok := p.parseOpenDeposit(tokens[6], accountType)
		if !ok {
			return nil, false
		}
		number := p.reg.NextNumber(branch, accountType)
		switch accountType {
		case domain.TypeChecking:
			return domain.NewChecking(number, holder, deposit), true
		case domain.TypeSavings:
			return domain.NewSavings(number, holder, deposit), true
		default:
			return domain.NewMoneyMarket(number, holder, deposit), true
		}

	case domain.TypeCollegeChecking:
		if len(tokens) < 8 {
			fmt.Fprintln(p.out, "Missing data tokens for opening an account.")
			return nil, false
		}
		if holder.DateOfBirth.Age() > collegeCheckingMaxAge {
			fmt.Fprintln(p.out, "Not eligible to open a college checking account (must be 24 or younger).")
			return nil, false
		}
		deposit, ok := p.parseOpenDeposit(tokens[6], domain.TypeChecking)
		if !ok {
			return nil, false
		}
		campus, ok := p.parseCampus(tokens[7])
		if !ok {
			return nil, false
		}
		number := p.reg.NextNumber(branch, domain.TypeCollegeChecking)
		return domain.NewCollegeChecking(number, holder, deposit, campus), true

	case domain.TypeCD:
		if len(tokens) < 9 {
			fmt.Fprintln(p.out, "Missing deposit, term, or open date for certificate deposit.")
			return nil, false
		}
		deposit, ok := p.parseOpenDeposit(tokens[6], domain.TypeCD)
		if !ok {
			return nil, false
		}
		term, ok := p.parseTerm(tokens[7])
		if !ok {
			return nil, false
		}
		opened, ok := p.parseOpenDate(tokens[8])
		if !ok {
			return nil, false
		}
		number := p.reg.NextNumber(branch, domain.TypeCD)
		return domain.NewCertificateDeposit(number, holder, deposit, term, opened), true

	default:
		fmt.Fprintf(p.out, "%s - invalid account type.\n", tokens[1])
		return nil, false
	}
}
