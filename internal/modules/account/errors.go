package account

import "errors"

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidCard    = errors.New("invalid card number")
	ErrEmptyUsername  = errors.New("username cannot be empty")
	ErrEmptyUpdate    = errors.New("all account fields are empty")
	ErrNotFound       = errors.New("account not found")
)
