package domain

import "errors"

// Business-rule failures. Infrastructure faults (storage, network) are wrapped
// with %w at the point they occur so callers can tell the two apart.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already taken")
	ErrUsernameReserved   = errors.New("username is reserved")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrEmptyBasket        = errors.New("basket is empty")
	ErrForbidden          = errors.New("access forbidden")
)
