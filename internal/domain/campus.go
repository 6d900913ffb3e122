package domain

import "fmt"

// Campus is the campus a college checking account is tied to.
type Campus string

const (
	CampusNewBrunswick Campus = "NEW_BRUNSWICK"
	CampusNewark       Campus = "NEWARK"
	CampusCamden       Campus = "CAMDEN"
)

func ParseCampus(code int) (Campus, error) {
	switch code {
	case 1:
		return CampusNewBrunswick, nil
	case 2:
		return CampusNewark, nil
	case 3:
		return CampusCamden, nil
	default:
		return "", fmt.Errorf("ParseCampus: %d: %w", code, ErrInvalidCampus)
	}
}

func (c Campus) String() string {
	return string(c)
}
