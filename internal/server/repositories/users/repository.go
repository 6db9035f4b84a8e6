// Package users provides storage for user accounts, with in-memory and
// PostgreSQL implementations behind a common interface.
package users

import (
	"context"

	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

type Repository interface {
	// Create stores a new user. A duplicate username yields
	// common.ErrUsernameTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUsername returns the user with the given username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
