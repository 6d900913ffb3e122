package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ActivityKind string

const (
	ActivityDeposit    ActivityKind = "deposit"
	ActivityWithdrawal ActivityKind = "withdrawal"
)

// Activity is one deposit or withdrawal applied to an account. Activities are
// append-only; ATM marks entries that came from the batch file.
type Activity struct {
	ID       uuid.UUID
	Date     Date
	Location Branch
	Kind     ActivityKind
	Amount   decimal.Decimal
	ATM      bool
}

func NewActivity(date Date, location Branch, kind ActivityKind, amount decimal.Decimal, atm bool) Activity {
	return Activity{
		ID:       uuid.New(),
		Date:     date,
		Location: location,
		Kind:     kind,
		Amount:   amount,
		ATM:      atm,
	}
}
