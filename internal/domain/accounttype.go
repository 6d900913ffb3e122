package domain

import (
	"fmt"
	"strings"
)

// AccountType classifies an account. Report grouping uses declaration order.
type AccountType string

const (
	TypeChecking        AccountType = "CHECKING"
	TypeSavings         AccountType = "SAVINGS"
	TypeMoneyMarket     AccountType = "MONEY_MARKET"
	TypeCollegeChecking AccountType = "COLLEGE_CHECKING"
	TypeCD              AccountType = "CD"
)

var accountTypeCode = map[AccountType]string{
	TypeChecking:        "01",
	TypeSavings:         "02",
	TypeMoneyMarket:     "03",
	TypeCollegeChecking: "04",
	TypeCD:              "05",
}

func AccountTypes() []AccountType {
	return []AccountType{TypeChecking, TypeSavings, TypeMoneyMarket, TypeCollegeChecking, TypeCD}
}

// ParseAccountType accepts the canonical names plus the shorthand the command
// grammar has always allowed.
func ParseAccountType(s string) (AccountType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "moneymarket":
		normalized = "money_market"
	case "college":
		normalized = "college_checking"
	case "certificate":
		normalized = "cd"
	}
	for _, t := range AccountTypes() {
		if normalized == strings.ToLower(string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("ParseAccountType: %q: %w", s, ErrInvalidAccountType)
}

func (t AccountType) Code() string {
	return accountTypeCode[t]
}

// Rank returns the declaration-order position, used for report grouping.
func (t AccountType) Rank() int {
	for i, typ := range AccountTypes() {
		if t == typ {
			return i
		}
	}
	return len(accountTypeCode)
}

func (t AccountType) String() string {
	return string(t)
}
