package domain

import "fmt"

// AccountNumber is the durable identity of an account: branch code, type
// code, and a zero-padded sequence issued by the registry.
type AccountNumber struct {
	Branch   Branch
	Type     AccountType
	Sequence int
}

func NewAccountNumber(branch Branch, accountType AccountType, sequence int) AccountNumber {
	return AccountNumber{Branch: branch, Type: accountType, Sequence: sequence}
}

// Compare orders numbers by their external string form.
func (n AccountNumber) Compare(other AccountNumber) int {
	a, b := n.String(), other.String()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (n AccountNumber) String() string {
	return fmt.Sprintf("%s%s%04d", n.Branch.Code(), n.Type.Code(), n.Sequence)
}
