// Package devices provides the device registry, with in-memory and
// PostgreSQL implementations behind a common interface.
package devices

import (
	"context"

	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

type Repository interface {
	// Create stores a new device.
	Create(ctx context.Context, device *models.Device) (*models.Device, error)

	// GetByID returns the device with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Device, error)

	// ListByUser returns all devices of a user, newest first. An empty
	// result is not an error.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Device, error)

	// Touch updates the device's last-seen timestamp.
	Touch(ctx context.Context, id uuid.UUID, lastSeen int64) error

	// Delete removes a device, or returns common.ErrorNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
