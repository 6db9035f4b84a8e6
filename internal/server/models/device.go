package models

import "github.com/google/uuid"

// Device is a registered client device of a user. LastSeen is touched on
// each activity; both timestamps are unix seconds.
type Device struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt int64     `json:"created_at"`
	LastSeen  int64     `json:"last_seen"`
}
