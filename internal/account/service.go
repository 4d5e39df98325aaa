package account

import (
	"context"
	"errors"
)

// Service implements the registration and authentication flows on top of
// a Store and a credential Comparator.
type Service struct {
	store      Store
	comparator Comparator
}

func NewService(store Store, comparator Comparator) *Service {
	return &Service{
		store:      store,
		comparator: comparator,
	}
}

// Register creates an account for email unless one already exists.
//
// The existence check is advisory: two concurrent registrations can both
// pass it, and the database unique index rejects the loser. Both paths
// surface as ErrEmailTaken.
func (s *Service) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) (*UserAccount, error) {

	exists, err := s.store.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if exists {
		return nil, ErrEmailTaken
	}

	return s.store.Create(ctx, name, email, password)
}

// Authenticate returns the account matching email and password exactly.
// Every miss, including an unknown email, is ErrInvalidCredentials so
// the response never discloses whether the account exists.
func (s *Service) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*UserAccount, error) {

	acc, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.comparator.Compare(acc.Password, password) {
		return nil, ErrInvalidCredentials
	}

	return acc, nil
}
