package domain

import "errors"

var (
	ErrMalformedDate      = errors.New("malformed date")
	ErrInvalidDate        = errors.New("not a valid calendar date")
	ErrFutureDate         = errors.New("date cannot be today or a future day")
	ErrUnderage           = errors.New("holder is under 18")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAccountNotFound    = errors.New("account does not exist")
	ErrAccountExists      = errors.New("holder already has an account of this type")
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidBranch      = errors.New("invalid branch")
	ErrInvalidCampus      = errors.New("invalid campus code")
	ErrInvalidTerm        = errors.New("invalid certificate term")
	ErrBelowMinimum       = errors.New("initial deposit below minimum")
)
