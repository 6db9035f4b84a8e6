package repomanager

import (
	"context"

	"github.com/dmitrijs2005/clipsync/internal/server/repositories/devices"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/users"
)

type MemoryRepositoryManager struct {
	users   *users.MemoryRepository
	devices *devices.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:   users.NewMemoryRepository(),
		devices: devices.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Devices() devices.Repository {
	return m.devices
}

func (m *MemoryRepositoryManager) Close() error {
	return nil
}
