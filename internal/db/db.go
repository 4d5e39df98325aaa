package db

import "database/sql"

// DB wraps *sql.DB so store packages depend on a local type
// rather than on database/sql directly.
type DB struct {
	*sql.DB
}
