package auth

import "errors"

var (
	ErrNotFound  = errors.New("account not found")
	ErrForbidden = errors.New("supplier role required")
)
