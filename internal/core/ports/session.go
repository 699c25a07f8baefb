package ports

import (
	"context"

	"github.com/tool2u/rental-platform/internal/core/domain"
)

// SignupInput carries the fields collected by the signup form.
type SignupInput struct {
	Username string
	Email    string
	Password string
	Name     string
}

// SessionService is the single source of truth for who the current actor is.
type SessionService interface {
	// Initialize loads the persisted session, if any. Runs its work exactly
	// once; later calls return the first outcome.
	Initialize(ctx context.Context) error

	// Login resolves credentials and establishes the session on success.
	// Returns domain.ErrInvalidCredentials on no match; any other error is an
	// infrastructure fault.
	Login(ctx context.Context, username, password string) (domain.Identity, error)

	// Signup registers a new customer, establishes the session, and fires the
	// registration notification. Returns domain.ErrUserExists on a duplicate
	// username and domain.ErrUsernameReserved for staff/demo usernames.
	Signup(ctx context.Context, in SignupInput) (domain.Identity, error)

	// Logout clears the current identity and its persisted copy. Idempotent.
	Logout(ctx context.Context)

	// Current returns the current identity, if any.
	Current() (domain.Identity, bool)

	// IsAuthenticated reports whether an identity is present. Derived from
	// Current on every call, never stored.
	IsAuthenticated() bool

	// IsLoading reports whether Initialize has not yet completed.
	IsLoading() bool
}
