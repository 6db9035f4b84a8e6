package devices

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps the device registry in process memory behind a
// reader/writer lock.
type MemoryRepository struct {
	mu      sync.RWMutex
	devices map[uuid.UUID]models.Device
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{devices: make(map[uuid.UUID]models.Device)}
}

func (r *MemoryRepository) Create(ctx context.Context, device *models.Device) (*models.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := *device
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().Unix()
	d.CreatedAt = now
	d.LastSeen = now

	r.devices[d.ID] = d
	return &d, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.devices[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &d, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Device, 0)
	for _, d := range r.devices {
		if d.UserID == userID {
			d := d
			result = append(result, &d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt > result[j].CreatedAt
	})
	return result, nil
}

func (r *MemoryRepository) Touch(ctx context.Context, id uuid.UUID, lastSeen int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[id]
	if !ok {
		return common.ErrorNotFound
	}
	d.LastSeen = lastSeen
	r.devices[id] = d
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.devices[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.devices, id)
	return nil
}
