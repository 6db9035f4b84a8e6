// Package models contains the plain data structures shared by repositories,
// services and the transport layer.
package models

import "github.com/google/uuid"

// Clipboard is a single clipboard snapshot pushed by a device.
//
// SentAt is supplied by the client and may be zero; ReceivedAt is assigned by
// the server on save and SentAt defaults to it when unset. Both are unix
// seconds. The struct is immutable after the save path has stamped it.
type Clipboard struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	DeviceID   uuid.UUID `json:"device_id"`
	UserID     uuid.UUID `json:"user_id"`
	SentAt     int64     `json:"sent_at"`
	ReceivedAt int64     `json:"received_at"`
}
