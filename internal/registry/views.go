package registry

import (
	"sort"
	"strings"

	"github.com/jbaiden/bankledger/internal/domain"
)

// Ordered views for reports. Each returns a fresh sorted slice; the held
// collection is never reordered.

// ByBranch orders accounts by county then branch name, case-insensitive.
func (r *Registry) ByBranch() []*domain.Account {
	out := r.Accounts()
	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := out[i].Number.Branch, out[j].Number.Branch
		if c := strings.Compare(strings.ToLower(bi.County()), strings.ToLower(bj.County())); c != 0 {
			return c < 0
		}
		return strings.Compare(strings.ToLower(string(bi)), strings.ToLower(string(bj))) < 0
	})
	return out
}

// ByHolder orders accounts by holder (last, first, dob) then number.
func (r *Registry) ByHolder() []*domain.Account {
	out := r.Accounts()
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Holder.Compare(out[j].Holder); c != 0 {
			return c < 0
		}
		return out[i].Number.Compare(out[j].Number) < 0
	})
	return out
}

// ByType orders accounts by account type (declaration order) then number.
func (r *Registry) ByType() []*domain.Account {
	out := r.Accounts()
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].Type().Rank(), out[j].Type().Rank()
		if ti != tj {
			return ti < tj
		}
		return out[i].Number.Compare(out[j].Number) < 0
	})
	return out
}
