package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Annual rates and fee thresholds per account type. Loyal savings and money
// market accounts earn a 0.25% premium.
var (
	checkingAnnual    = decimal.RequireFromString("0.015")
	savingsAnnual     = decimal.RequireFromString("0.025")
	savingsLoyal      = decimal.RequireFromString("0.0275")
	moneyMarketAnnual = decimal.RequireFromString("0.035")
	moneyMarketLoyal  = decimal.RequireFromString("0.0375")

	cdAnnual = map[int]decimal.Decimal{
		3:  decimal.RequireFromString("0.03"),
		6:  decimal.RequireFromString("0.0325"),
		9:  decimal.RequireFromString("0.035"),
		12: decimal.RequireFromString("0.04"),
	}

	checkingFee         = decimal.NewFromInt(15)
	checkingWaive       = decimal.NewFromInt(1000)
	savingsFee          = decimal.NewFromInt(25)
	savingsWaive        = decimal.NewFromInt(500)
	moneyMarketFee      = decimal.NewFromInt(25)
	moneyMarketWaive    = decimal.NewFromInt(2000)
	excessWithdrawalFee = decimal.NewFromInt(10)

	monthsPerYear = decimal.NewFromInt(12)
)

// Minimum opening deposits.
var (
	MinDepositMoneyMarket = decimal.NewFromInt(2000)
	MinDepositCD          = decimal.NewFromInt(1000)
)

const freeWithdrawals = 3

// CDTerms are the certificate terms on offer, in months.
var CDTerms = []int{3, 6, 9, 12}

func ValidCDTerm(term int) bool {
	_, ok := cdAnnual[term]
	return ok
}

// Account is a closed union over the five account kinds. The kind lives in
// the account number's type; variant fields are meaningful only for the kinds
// that declare them (Loyal for savings and money market, Withdrawals for
// money market, Campus for college checking, Term and Opened for
// certificates).
type Account struct {
	Number     AccountNumber
	Holder     Profile
	Balance    decimal.Decimal
	Activities []Activity

	Loyal       bool
	Withdrawals int
	Campus      Campus
	Term        int
	Opened      Date
}

func NewChecking(number AccountNumber, holder Profile, balance decimal.Decimal) *Account {
	return &Account{Number: number, Holder: holder, Balance: balance}
}

func NewSavings(number AccountNumber, holder Profile, balance decimal.Decimal) *Account {
	return &Account{Number: number, Holder: holder, Balance: balance}
}

func NewMoneyMarket(number AccountNumber, holder Profile, balance decimal.Decimal) *Account {
	return &Account{Number: number, Holder: holder, Balance: balance}
}

func NewCollegeChecking(number AccountNumber, holder Profile, balance decimal.Decimal, campus Campus) *Account {
	return &Account{Number: number, Holder: holder, Balance: balance, Campus: campus}
}

func NewCertificateDeposit(number AccountNumber, holder Profile, balance decimal.Decimal, term int, opened Date) *Account {
	return &Account{Number: number, Holder: holder, Balance: balance, Term: term, Opened: opened}
}

func (a *Account) Type() AccountType {
	return a.Number.Type
}

// SameHolderAndType reports whether two accounts count as duplicates: same
// holder and same account type, regardless of number. This is the
// one-account-of-each-type business rule, not identity equality.
func (a *Account) SameHolderAndType(other *Account) bool {
	return a.Holder.Equal(other.Holder) && a.Type() == other.Type()
}

// AnnualRate returns the account's current effective annual interest rate.
// Savings and money market rates are loyalty-aware; certificate rates are
// indexed by term.
func (a *Account) AnnualRate() decimal.Decimal {
	switch a.Type() {
	case TypeChecking, TypeCollegeChecking:
		return checkingAnnual
	case TypeSavings:
		if a.Loyal {
			return savingsLoyal
		}
		return savingsAnnual
	case TypeMoneyMarket:
		if a.Loyal {
			return moneyMarketLoyal
		}
		return moneyMarketAnnual
	case TypeCD:
		return cdAnnual[a.Term]
	default:
		return decimal.Zero
	}
}

// Interest returns one month of interest accrual at the current rate.
func (a *Account) Interest() decimal.Decimal {
	return a.Balance.Mul(a.AnnualRate().Div(monthsPerYear))
}

// Fee returns the monthly fee. College checking and certificates carry none;
// the others waive the base fee above a balance threshold. The money market
// excess-withdrawal surcharge is independent of the waiver.
func (a *Account) Fee() decimal.Decimal {
	switch a.Type() {
	case TypeChecking:
		if a.Balance.GreaterThanOrEqual(checkingWaive) {
			return decimal.Zero
		}
		return checkingFee
	case TypeSavings:
		if a.Balance.GreaterThanOrEqual(savingsWaive) {
			return decimal.Zero
		}
		return savingsFee
	case TypeMoneyMarket:
		fee := decimal.Zero
		if a.Balance.LessThan(moneyMarketWaive) {
			fee = fee.Add(moneyMarketFee)
		}
		if a.Withdrawals > freeWithdrawals {
			fee = fee.Add(excessWithdrawalFee)
		}
		return fee
	default:
		return decimal.Zero
	}
}

func (a *Account) Deposit(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("Deposit: %w", ErrInvalidAmount)
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Withdraw debits the balance. Insufficient funds is a reported condition,
// not a fatal error; the balance is untouched on failure. Money market
// accounts count every successful withdrawal toward the excess-withdrawal
// surcharge.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("Withdraw: %w", ErrInvalidAmount)
	}
	if a.Balance.LessThan(amount) {
		return fmt.Errorf("Withdraw: %w", ErrInsufficientFunds)
	}
	a.Balance = a.Balance.Sub(amount)
	if a.Type() == TypeMoneyMarket {
		a.Withdrawals++
	}
	return nil
}

func (a *Account) AddActivity(act Activity) {
	a.Activities = append(a.Activities, act)
}

// StatementResult is the outcome of posting one statement cycle.
type StatementResult struct {
	Interest decimal.Decimal
	Fee      decimal.Decimal
	Balance  decimal.Decimal
}

// PostStatement computes the monthly interest and fee and posts both to the
// balance in one step. This is the only place ordinary interest and fees hit
// the balance.
func (a *Account) PostStatement() StatementResult {
	interest := a.Interest()
	fee := a.Fee()
	a.Balance = a.Balance.Add(interest).Sub(fee)
	return StatementResult{Interest: interest, Fee: fee, Balance: a.Balance}
}

// MaturityDate is the certificate's open date plus its term in calendar
// months. Meaningful only for CD accounts.
func (a *Account) MaturityDate() Date {
	return a.Opened.AddMonths(a.Term)
}
