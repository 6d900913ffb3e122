// Package batch applies the two flat-file record formats: the account load
// file and the activities file. Malformed or unresolvable lines are skipped
// with a warning; a bad line never aborts the batch.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jbaiden/bankledger/internal/domain"
	"github.com/jbaiden/bankledger/internal/logging"
	"github.com/jbaiden/bankledger/internal/loyalty"
	"github.com/jbaiden/bankledger/internal/registry"
	"github.com/jbaiden/bankledger/internal/report"
)

// LoadAccounts reads comma-separated account records
// (type,branch,first,last,dob,balance[,campus|term,openDate]) and adds them
// to the registry with freshly issued numbers. Loyalty is recomputed once the
// whole file is in, so savings opened before their holder's checking still
// end up loyal.
func LoadAccounts(ctx context.Context, r io.Reader, reg *registry.Registry, loyal *loyalty.Engine) (int, error) {
	log := logging.FromContext(ctx)
	scanner := bufio.NewScanner(r)
	count := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		a, err := parseAccountRecord(line, reg)
		if err != nil {
			log.Warn("skipping account record", "line", line, "error", err)
			continue
		}
		if err := reg.Add(a); err != nil {
			log.Warn("skipping account record", "line", line, "error", err)
			continue
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("LoadAccounts: %w", err)
	}

	for _, a := range reg.Accounts() {
		switch a.Type() {
		case domain.TypeSavings:
			loyal.RecomputeSavings(a.Holder)
		case domain.TypeMoneyMarket:
			loyal.RecomputeMoneyMarket(a)
		}
	}
	return count, nil
}

func parseAccountRecord(line string, reg *registry.Registry) (*domain.Account, error) {
	tokens := strings.Split(line, ",")
	if len(tokens) < 6 {
		return nil, fmt.Errorf("parseAccountRecord: want at least 6 fields, got %d", len(tokens))
	}
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	accountType, err := domain.ParseAccountType(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("parseAccountRecord: %w", err)
	}
	branch, err := domain.ParseBranch(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("parseAccountRecord: %w", err)
	}
	dob, err := domain.ParseDate(tokens[4])
	if err != nil {
		return nil, fmt.Errorf("parseAccountRecord: %w", err)
	}
	if !dob.IsValid() {
		return nil, fmt.Errorf("parseAccountRecord: dob %s: %w", tokens[4], domain.ErrInvalidDate)
	}
	balance, err := decimal.NewFromString(tokens[5])
	if err != nil {
		return nil, fmt.Errorf("parseAccountRecord: balance %q: %w", tokens[5], err)
	}

	holder := domain.NewProfile(tokens[2], tokens[3], dob)
	number := reg.NextNumber(branch, accountType)

	switch accountType {
	case domain.TypeChecking:
		return domain.NewChecking(number, holder, balance), nil
	case domain.TypeSavings:
		return domain.NewSavings(number, holder, balance), nil
	case domain.TypeMoneyMarket:
		return domain.NewMoneyMarket(number, holder, balance), nil
	case domain.TypeCollegeChecking:
		if len(tokens) < 7 {
			return nil, fmt.Errorf("parseAccountRecord: missing campus code")
		}
		code, err := strconv.Atoi(tokens[6])
		if err != nil {
			return nil, fmt.Errorf("parseAccountRecord: campus %q: %w", tokens[6], domain.ErrInvalidCampus)
		}
		campus, err := domain.ParseCampus(code)
		if err != nil {
			return nil, fmt.Errorf("parseAccountRecord: %w", err)
		}
		return domain.NewCollegeChecking(number, holder, balance, campus), nil
	case domain.TypeCD:
		if len(tokens) < 8 {
			return nil, fmt.Errorf("parseAccountRecord: missing term or open date")
		}
		term, err := strconv.Atoi(tokens[6])
		if err != nil || !domain.ValidCDTerm(term) {
			return nil, fmt.Errorf("parseAccountRecord: term %q: %w", tokens[6], domain.ErrInvalidTerm)
		}
		opened, err := domain.ParseDate(tokens[7])
		if err != nil {
			return nil, fmt.Errorf("parseAccountRecord: %w", err)
		}
		if !opened.IsValid() {
			return nil, fmt.Errorf("parseAccountRecord: open date %s: %w", tokens[7], domain.ErrInvalidDate)
		}
		return domain.NewCertificateDeposit(number, holder, balance, term, opened), nil
	default:
		return nil, fmt.Errorf("parseAccountRecord: %w", domain.ErrInvalidAccountType)
	}
}

// ApplyActivities reads activity records (kind,accountNumber,date,branch,amount)
// and applies each through the ordinary deposit/withdraw primitives, tagging
// the resulting activity as batch-sourced. Applied lines are echoed to w.
func ApplyActivities(ctx context.Context, r io.Reader, reg *registry.Registry, loyal *loyalty.Engine, w io.Writer) (int, error) {
	log := logging.FromContext(ctx)
	scanner := bufio.NewScanner(r)
	count := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		act, err := applyActivityRecord(line, reg, loyal, w)
		if err != nil {
			log.Warn("skipping activity record", "line", line, "error", err)
			continue
		}
		log.Info("activity applied", "id", act.ID, "kind", act.Kind, "amount", act.Amount)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("ApplyActivities: %w", err)
	}
	return count, nil
}

func applyActivityRecord(line string, reg *registry.Registry, loyal *loyalty.Engine, w io.Writer) (domain.Activity, error) {
	tokens := strings.Split(line, ",")
	if len(tokens) < 5 {
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: want 5 fields, got %d", len(tokens))
	}
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}

	var kind domain.ActivityKind
	switch tokens[0] {
	case "D":
		kind = domain.ActivityDeposit
	case "W":
		kind = domain.ActivityWithdrawal
	default:
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: unknown kind %q", tokens[0])
	}

	date, err := domain.ParseDate(tokens[2])
	if err != nil {
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: %w", err)
	}
	if !date.IsValid() {
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: date %s: %w", tokens[2], domain.ErrInvalidDate)
	}
	location, err := domain.ParseBranch(tokens[3])
	if err != nil {
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: %w", err)
	}
	amount, err := decimal.NewFromString(tokens[4])
	if err != nil {
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: amount %q: %w", tokens[4], err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: amount %s: %w", amount, domain.ErrInvalidAmount)
	}

	a, err := reg.ByNumber(tokens[1])
	if err != nil {
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: %w", err)
	}

	if kind == domain.ActivityDeposit {
		err = a.Deposit(amount)
	} else {
		err = a.Withdraw(amount)
	}
	if err != nil {
		return domain.Activity{}, fmt.Errorf("applyActivityRecord: %w", err)
	}

	act := domain.NewActivity(date, location, kind, amount, true)
	a.AddActivity(act)
	loyal.RecomputeMoneyMarket(a)
	fmt.Fprintf(w, "%s::%s::%s[ATM]::%s::$%s\n", a.Number, date, location, kind, report.FormatAmount(amount))
	return act, nil
}
