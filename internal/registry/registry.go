package registry

import (
	"fmt"

	"github.com/jbaiden/bankledger/internal/domain"
)

// Closed is an archived account together with the date it was closed. The
// snapshot is frozen: nothing mutates an account once it reaches the archive.
type Closed struct {
	Account  *domain.Account
	ClosedOn domain.Date
}

// Registry owns the live accounts and the archive of closed ones. An account
// is in exactly one of the two; Close moves it exactly once. Lookup is by the
// account number's string form.
type Registry struct {
	accounts map[string]*domain.Account
	order    []string
	archive  []Closed
	sequence int
}

func New() *Registry {
	return &Registry{accounts: make(map[string]*domain.Account)}
}

// NextNumber issues the next account number for the given branch and type.
// Sequences are registry-wide and never reused.
func (r *Registry) NextNumber(branch domain.Branch, accountType domain.AccountType) domain.AccountNumber {
	r.sequence++
	return domain.NewAccountNumber(branch, accountType, r.sequence)
}

func (r *Registry) Add(a *domain.Account) error {
	key := a.Number.String()
	if _, ok := r.accounts[key]; ok {
		return fmt.Errorf("Add: %s: account number already in use", key)
	}
	r.accounts[key] = a
	r.order = append(r.order, key)
	return nil
}

// ByNumber looks up a live account by its external number string.
func (r *Registry) ByNumber(number string) (*domain.Account, error) {
	a, ok := r.accounts[number]
	if !ok {
		return nil, fmt.Errorf("ByNumber: %s: %w", number, domain.ErrAccountNotFound)
	}
	return a, nil
}

// HasAccountOfType reports whether the holder already has a live account of
// the given type.
func (r *Registry) HasAccountOfType(holder domain.Profile, accountType domain.AccountType) bool {
	for _, a := range r.accounts {
		if a.Holder.Equal(holder) && a.Type() == accountType {
			return true
		}
	}
	return false
}

// HasChecking reports whether the holder owns a plain checking account.
// College checking does not count toward savings loyalty.
func (r *Registry) HasChecking(holder domain.Profile) bool {
	return r.HasAccountOfType(holder, domain.TypeChecking)
}

func (r *Registry) ForHolder(holder domain.Profile) []*domain.Account {
	var out []*domain.Account
	for _, key := range r.order {
		if a := r.accounts[key]; a.Holder.Equal(holder) {
			out = append(out, a)
		}
	}
	return out
}

// Close removes the account from the live set and appends it to the archive.
func (r *Registry) Close(number string, closeDate domain.Date) (*domain.Account, error) {
	a, ok := r.accounts[number]
	if !ok {
		return nil, fmt.Errorf("Close: %s: %w", number, domain.ErrAccountNotFound)
	}
	r.remove(number)
	r.archive = append(r.archive, Closed{Account: a, ClosedOn: closeDate})
	return a, nil
}

// CloseAllForHolder archives every live account of the holder and returns
// the closed accounts, which may be empty.
func (r *Registry) CloseAllForHolder(holder domain.Profile, closeDate domain.Date) []*domain.Account {
	var closed []*domain.Account
	for _, a := range r.ForHolder(holder) {
		r.remove(a.Number.String())
		r.archive = append(r.archive, Closed{Account: a, ClosedOn: closeDate})
		closed = append(closed, a)
	}
	return closed
}

func (r *Registry) remove(key string) {
	delete(r.accounts, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Registry) Len() int {
	return len(r.accounts)
}

func (r *Registry) IsEmpty() bool {
	return len(r.accounts) == 0
}

func (r *Registry) ArchiveIsEmpty() bool {
	return len(r.archive) == 0
}

// Accounts returns the live accounts in insertion order.
func (r *Registry) Accounts() []*domain.Account {
	out := make([]*domain.Account, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.accounts[key])
	}
	return out
}

// Archive returns the closed accounts in the order they were archived.
func (r *Registry) Archive() []Closed {
	out := make([]Closed, len(r.archive))
	copy(out, r.archive)
	return out
}
