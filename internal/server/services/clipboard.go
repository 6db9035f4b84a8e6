package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/broadcast"
	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/clipboard"
	"github.com/google/uuid"
)

// ClipboardService stores clipboard entries and fans them out to watchers.
// A saved entry is published to the hub best-effort; watchers that fall
// behind lose oldest entries and must reconcile via the list queries.
type ClipboardService struct {
	repo           clipboard.Repository
	hub            *broadcast.Hub[models.Clipboard]
	maxContentSize int
	retention      time.Duration
	now            func() time.Time
}

func NewClipboardService(repo clipboard.Repository, hub *broadcast.Hub[models.Clipboard], maxContentSize int, retention time.Duration) *ClipboardService {
	return &ClipboardService{
		repo:           repo,
		hub:            hub,
		maxContentSize: maxContentSize,
		retention:      retention,
		now:            time.Now,
	}
}

// Save validates, stamps and stores entry, then publishes it to watchers.
// It returns the stored copy. Content larger than the configured limit is
// rejected before anything is stored or published.
func (s *ClipboardService) Save(ctx context.Context, entry *models.Clipboard) (*models.Clipboard, error) {
	if len(entry.Content) > s.maxContentSize {
		return nil, common.ErrContentTooLarge
	}

	stored := *entry
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	stored.ReceivedAt = s.now().Unix()
	if stored.SentAt == 0 {
		stored.SentAt = stored.ReceivedAt
	}

	if err := s.repo.Save(ctx, &stored); err != nil {
		return nil, err
	}

	s.hub.Publish(stored)
	return &stored, nil
}

// Get returns the entry with the given id.
func (s *ClipboardService) Get(ctx context.Context, id uuid.UUID) (*models.Clipboard, error) {
	return s.repo.Get(ctx, id)
}

// ListForUser returns all entries owned by userID, newest first. The result
// is an empty slice, not an error, when the user has no entries.
func (s *ClipboardService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*models.Clipboard, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListForDevice returns all entries sent from deviceID, newest first.
func (s *ClipboardService) ListForDevice(ctx context.Context, deviceID uuid.UUID) ([]*models.Clipboard, error) {
	return s.repo.ListByDevice(ctx, deviceID)
}

// LatestForUser returns the most recently received entry for userID.
func (s *ClipboardService) LatestForUser(ctx context.Context, userID uuid.UUID) (*models.Clipboard, error) {
	return s.repo.LatestByUser(ctx, userID)
}

// Delete removes entry id after verifying requester owns it. A forbidden
// delete leaves the entry untouched.
func (s *ClipboardService) Delete(ctx context.Context, id uuid.UUID, requester uuid.UUID) error {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != requester {
		return common.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// DeleteForUser removes every entry owned by userID and returns how many
// were removed.
func (s *ClipboardService) DeleteForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	removed, err := s.repo.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if removed == 0 {
		return 0, common.ErrClipboardNotFound
	}
	return removed, nil
}

// EvictExpired removes entries older than the retention period, measured
// against their received timestamp. It reports how many were evicted.
func (s *ClipboardService) EvictExpired(ctx context.Context) (int, error) {
	return s.repo.DeleteExpired(ctx, s.now().Unix(), int64(s.retention.Seconds()))
}

// Subscribe attaches a new watcher to the fanout hub. The subscription
// starts at the stream tail: only entries saved after this call are
// delivered.
func (s *ClipboardService) Subscribe() *broadcast.Subscription[models.Clipboard] {
	return s.hub.Subscribe()
}
