// Package clipboard provides the in-memory clipboard entry store. Entries
// are volatile: they are TTL-evicted and never persisted.
package clipboard

import (
	"context"

	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

type Repository interface {
	// Save stores the entry under its id, replacing any existing value.
	Save(ctx context.Context, entry *models.Clipboard) error

	// Get returns the entry with the given id, or common.ErrClipboardNotFound.
	Get(ctx context.Context, id uuid.UUID) (*models.Clipboard, error)

	// ListByUser returns the user's entries ordered by received_at
	// descending. An empty result is not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Clipboard, error)

	// ListByDevice returns the device's entries ordered by received_at
	// descending. An empty result is not an error.
	ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*models.Clipboard, error)

	// LatestByUser returns the user's entry with the greatest received_at,
	// or common.ErrClipboardNotFound.
	LatestByUser(ctx context.Context, userID uuid.UUID) (*models.Clipboard, error)

	// Delete removes the entry, or returns common.ErrClipboardNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes all entries of a user and returns how many were
	// removed.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpired removes every entry with now-received_at >= retention
	// (seconds) and returns how many were removed.
	DeleteExpired(ctx context.Context, now int64, retention int64) (int, error)

	// Len returns the number of stored entries.
	Len(ctx context.Context) int
}
