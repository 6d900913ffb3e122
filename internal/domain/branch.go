package domain

import (
	"fmt"
	"strings"
)

// Branch is a bank branch, used both as account domicile and as activity
// location.
type Branch string

const (
	BranchEdison      Branch = "EDISON"
	BranchBridgewater Branch = "BRIDGEWATER"
	BranchPrinceton   Branch = "PRINCETON"
	BranchPiscataway  Branch = "PISCATAWAY"
	BranchWarren      Branch = "WARREN"
)

var branchInfo = map[Branch]struct {
	code   string
	county string
}{
	BranchEdison:      {"100", "Middlesex"},
	BranchBridgewater: {"200", "Somerset"},
	BranchPrinceton:   {"300", "Mercer"},
	BranchPiscataway:  {"400", "Middlesex"},
	BranchWarren:      {"500", "Somerset"},
}

func Branches() []Branch {
	return []Branch{BranchEdison, BranchBridgewater, BranchPrinceton, BranchPiscataway, BranchWarren}
}

func ParseBranch(s string) (Branch, error) {
	for _, b := range Branches() {
		if strings.EqualFold(s, string(b)) {
			return b, nil
		}
	}
	return "", fmt.Errorf("ParseBranch: %q: %w", s, ErrInvalidBranch)
}

func (b Branch) Code() string {
	return branchInfo[b].code
}

func (b Branch) County() string {
	return branchInfo[b].county
}

func (b Branch) String() string {
	return string(b)
}
