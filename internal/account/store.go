package account

import (
	"context"
	"errors"
)

var (
	// ErrEmailTaken is returned when a create would violate the email
	// uniqueness constraint, whether caught by the advisory pre-check
	// or by the database index.
	ErrEmailTaken = errors.New("account: email already registered")

	// ErrNotFound is returned by lookups that match no account.
	ErrNotFound = errors.New("account: not found")

	// ErrInvalidCredentials hides whether the email exists at all.
	ErrInvalidCredentials = errors.New("account: invalid credentials")
)

// Store defines how user accounts are persisted and looked up.
type Store interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, name, email, password string) (*UserAccount, error)
	GetByEmail(ctx context.Context, email string) (*UserAccount, error)
}
