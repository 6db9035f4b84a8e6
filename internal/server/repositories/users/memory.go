package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. The primary id→user map
// and the username→id index are mutated under the same write lock, so
// username uniqueness holds for concurrent registrations.
type MemoryRepository struct {
	mu     sync.RWMutex
	users  map[uuid.UUID]models.User
	byName map[string]uuid.UUID
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:  make(map[uuid.UUID]models.User),
		byName: make(map[string]uuid.UUID),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.Username]; ok {
		return nil, common.ErrUsernameTaken
	}

	u := *user
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	r.users[u.ID] = u
	r.byName[u.Username] = u.ID

	return &u, nil
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := r.users[id]
	return &u, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &u, nil
}
