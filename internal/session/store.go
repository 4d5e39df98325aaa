package session

import (
	"context"
	"time"
)

// Session is the per-visitor state established at login. UserID and
// UserName are written together as one payload; UserName is a snapshot
// of the account name at login time and is never re-synced.
type Session struct {
	SessionID string    // unique session identifier
	UserID    string    // references users.id
	UserName  string    // display name snapshot for the dashboard
	CreatedAt time.Time // when the session was established
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are stored and retrieved.
// Get returns (nil, nil) for an unknown id; Delete on an unknown id is
// a no-op, so logout stays idempotent.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
