package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"account-service/internal/db"

	"github.com/lib/pq"
)

// pgUniqueViolation is the Postgres error code for a unique constraint
// violation (class 23, integrity constraint violation).
const pgUniqueViolation = "23505"

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1
		)
	`, email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("account: exists check: %w", err)
	}

	return exists, nil
}

func (s *PostgresStore) Create(ctx context.Context, name, email, password string) (*UserAccount, error) {
	acc := &UserAccount{
		Name:     name,
		Email:    email,
		Password: password,
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, name, email, password).Scan(&acc.ID, &acc.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("account: create: %w", err)
	}

	return acc, nil
}

func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*UserAccount, error) {
	acc := &UserAccount{}

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&acc.ID, &acc.Name, &acc.Email, &acc.Password, &acc.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("account: get by email: %w", err)
	}

	return acc, nil
}

// isUniqueViolation recognizes the constraint error a create hits when
// it loses the check-then-create race. The string fallback covers
// drivers and mocks that do not surface *pq.Error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, pgUniqueViolation)
}
