// Package repomanager aggregates the durable repositories and selects the
// backing store: in-memory by default, PostgreSQL when a DSN is configured.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/clipsync/internal/server/repositories/devices"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Devices() devices.Repository
	Close() error
}
