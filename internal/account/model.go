package account

import (
	"time"

	"github.com/google/uuid"
)

// UserAccount is the durable account record. Email is unique across the
// store; Name is a display name snapshotted into the session at login.
type UserAccount struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}
