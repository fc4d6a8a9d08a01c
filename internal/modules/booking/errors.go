package booking

import "errors"

var (
	ErrInvalidInput    = errors.New("booking cannot be empty")
	ErrMissingUsername = errors.New("username is required for booking")
	ErrInvalidRoute    = errors.New("invalid route id for booking")
	ErrNotFound        = errors.New("booking not found")
)
