// Package loyalty recomputes the cross-account loyal flag. Savings loyalty
// follows checking ownership; money market loyalty follows a balance
// threshold. Certificates and checking accounts are never loyal.
package loyalty

import (
	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/registry"
	"github.com/shopspring/decimal"
)

var moneyMarketLoyalThreshold = decimal.NewFromInt(5000)

type Engine struct {
	reg *registry.Registry
}

func New(reg *registry.Registry) *Engine {
	return &Engine{reg: reg}
}

// RecomputeSavings sets the loyal flag on every live savings account of the
// holder: loyal iff the holder currently owns a checking account. Called
// after a checking account is opened or closed, never on deposit or
// withdrawal.
func (e *Engine) RecomputeSavings(holder domain.Profile) {
	hasChecking := e.reg.HasChecking(holder)
	for _, a := range e.reg.ForHolder(holder) {
		if a.Type() == domain.TypeSavings {
			a.Loyal = hasChecking
		}
	}
}

// RecomputeMoneyMarket sets the loyal flag from the current balance. Called
// at open and after every deposit and withdrawal on a money market account.
func (e *Engine) RecomputeMoneyMarket(a *domain.Account) {
	if a.Type() != domain.TypeMoneyMarket {
		return
	}
	a.Loyal = a.Balance.GreaterThanOrEqual(moneyMarketLoyalThreshold)
}
