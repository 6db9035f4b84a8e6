package clipboard

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository is the reader/writer-locked map behind the clipboard
// store. Reads take the shared lock, writes the exclusive one; an entry is
// never partially visible to readers.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]models.Clipboard
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[uuid.UUID]models.Clipboard)}
}

func (r *MemoryRepository) Save(ctx context.Context, entry *models.Clipboard) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = *entry
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (*models.Clipboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, common.ErrClipboardNotFound
	}
	return &e, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Clipboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(e *models.Clipboard) bool { return e.UserID == userID }), nil
}

func (r *MemoryRepository) ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*models.Clipboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterLocked(func(e *models.Clipboard) bool { return e.DeviceID == deviceID }), nil
}

// filterLocked collects matching entries sorted by received_at descending.
// Callers must hold at least the read lock.
func (r *MemoryRepository) filterLocked(match func(*models.Clipboard) bool) []*models.Clipboard {
	result := make([]*models.Clipboard, 0)
	for _, e := range r.entries {
		e := e
		if match(&e) {
			result = append(result, &e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ReceivedAt > result[j].ReceivedAt
	})
	return result
}

func (r *MemoryRepository) LatestByUser(ctx context.Context, userID uuid.UUID) (*models.Clipboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *models.Clipboard
	for _, e := range r.entries {
		if e.UserID != userID {
			continue
		}
		e := e
		if latest == nil || e.ReceivedAt > latest.ReceivedAt {
			latest = &e
		}
	}
	if latest == nil {
		return nil, common.ErrClipboardNotFound
	}
	return latest, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return common.ErrClipboardNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *MemoryRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if e.UserID == userID {
			delete(r.entries, id)
			removed++
		}
	}
	return removed, nil
}

func (r *MemoryRepository) DeleteExpired(ctx context.Context, now int64, retention int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, e := range r.entries {
		if now-e.ReceivedAt >= retention {
			delete(r.entries, id)
			removed++
		}
	}
	return removed, nil
}

func (r *MemoryRepository) Len(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
