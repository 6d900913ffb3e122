package domain

import (
	"fmt"
	"strings"
)

// Profile identifies an account holder. Multiple accounts may share one
// Profile value; names compare case-insensitively.
type Profile struct {
	FirstName   string
	LastName    string
	DateOfBirth Date
}

func NewProfile(first, last string, dob Date) Profile {
	return Profile{FirstName: first, LastName: last, DateOfBirth: dob}
}

func (p Profile) Equal(other Profile) bool {
	return strings.EqualFold(p.FirstName, other.FirstName) &&
		strings.EqualFold(p.LastName, other.LastName) &&
		p.DateOfBirth.Equal(other.DateOfBirth)
}

// Compare orders profiles by last name, then first name (both
// case-insensitive), then date of birth.
func (p Profile) Compare(other Profile) int {
	if c := strings.Compare(strings.ToLower(p.LastName), strings.ToLower(other.LastName)); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(p.FirstName), strings.ToLower(other.FirstName)); c != 0 {
		return c
	}
	return p.DateOfBirth.Compare(other.DateOfBirth)
}

func (p Profile) String() string {
	return fmt.Sprintf("%s %s %s", p.FirstName, p.LastName, p.DateOfBirth)
}
