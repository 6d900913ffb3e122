// Package closing computes the interest earned, and for certificates the
// early-withdrawal penalty, as of a close date.
package closing

import (
	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/shopspring/decimal"
)

// Result pairs the close-time interest with the penalty. Penalty is zero for
// everything except a certificate closed before maturity.
type Result struct {
	Interest decimal.Decimal
	Penalty  decimal.Decimal
}

// Stepped annual rates applied when a certificate is closed early, selected
// by elapsed whole months at 30 days per month.
var (
	earlyRate6   = decimal.RequireFromString("0.03")
	earlyRate9   = decimal.RequireFromString("0.0325")
	earlyRateMax = decimal.RequireFromString("0.035")

	penaltyRate = decimal.RequireFromString("0.10")
	daysPerYear = decimal.NewFromInt(365)
)

const daysPerMonth = 30

// Calculate returns the interest and penalty due when the account is closed
// on closeDate. Certificates use exact elapsed days against a 30-day-month
// approximation of the term; all other types use a simpler partial-month
// accrual through the close date's day of month.
func Calculate(a *domain.Account, closeDate domain.Date) Result {
	if a.Type() == domain.TypeCD {
		return closeCertificate(a, closeDate)
	}
	dayOfMonth := decimal.NewFromInt(int64(closeDate.Day))
	interest := a.Balance.Mul(a.AnnualRate().Div(daysPerYear)).Mul(dayOfMonth)
	return Result{Interest: interest, Penalty: decimal.Zero}
}

func closeCertificate(a *domain.Account, closeDate domain.Date) Result {
	daysElapsed := closeDate.DayNumber() - a.Opened.DayNumber()
	if daysElapsed <= 0 {
		return Result{Interest: decimal.Zero, Penalty: decimal.Zero}
	}

	days := decimal.NewFromInt(int64(daysElapsed))
	if daysElapsed >= a.Term*daysPerMonth {
		// Matured: full-term rate over the actual days held, no penalty.
		interest := a.Balance.Mul(a.AnnualRate().Div(daysPerYear)).Mul(days)
		return Result{Interest: interest, Penalty: decimal.Zero}
	}

	interest := a.Balance.Mul(earlyRate(daysElapsed).Div(daysPerYear)).Mul(days)
	return Result{Interest: interest, Penalty: interest.Mul(penaltyRate)}
}

func earlyRate(daysElapsed int) decimal.Decimal {
	switch months := daysElapsed / daysPerMonth; {
	case months <= 6:
		return earlyRate6
	case months <= 9:
		return earlyRate9
	default:
		return earlyRateMax
	}
}
