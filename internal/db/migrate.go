package db

import (
	"context"
	"database/sql"
)

const accountMigration = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS users (
    id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
    name varchar(100) NOT NULL,
    email varchar(100) NOT NULL,
    password varchar(100) NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique
ON users (email);
`

// RunAccountMigration creates the account table on startup. The unique
// index on email is the final authority for the uniqueness invariant;
// the registration flow's existence check is advisory only.
func RunAccountMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, accountMigration)
	return err
}
