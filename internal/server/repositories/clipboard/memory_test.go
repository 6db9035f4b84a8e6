package clipboard

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/google/uuid"
)

func newEntry(userID, deviceID uuid.UUID, receivedAt int64) *models.Clipboard {
	return &models.Clipboard{
		ID:         uuid.New(),
		Content:    "test content",
		DeviceID:   deviceID,
		UserID:     userID,
		SentAt:     receivedAt,
		ReceivedAt: receivedAt,
	}
}

func TestMemory_SaveAndGet(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	e := newEntry(uuid.New(), uuid.New(), 100)
	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := repo.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Content != "test content" || got.UserID != e.UserID {
		t.Fatalf("unexpected entry: %+v", got)
	}

	if _, err := repo.Get(ctx, uuid.New()); !errors.Is(err, common.ErrClipboardNotFound) {
		t.Fatalf("expected ErrClipboardNotFound, got %v", err)
	}
}

func TestMemory_SaveReplacesSameID(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	e := newEntry(uuid.New(), uuid.New(), 100)
	if err := repo.Save(ctx, e); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	updated := *e
	updated.Content = "replaced"
	if err := repo.Save(ctx, &updated); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := repo.Get(ctx, e.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Content != "replaced" {
		t.Fatalf("expected replaced content, got %q", got.Content)
	}
	if repo.Len(ctx) != 1 {
		t.Fatalf("expected 1 entry, got %d", repo.Len(ctx))
	}
}

func TestMemory_ListByUserOrdering(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	for i := int64(1); i <= 3; i++ {
		e := newEntry(userID, deviceID, i*10)
		e.Content = fmt.Sprintf("content %d", i)
		if err := repo.Save(ctx, e); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}
	// Another user's entry must not leak in.
	if err := repo.Save(ctx, newEntry(uuid.New(), uuid.New(), 99)); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	list, err := repo.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ReceivedAt < list[i].ReceivedAt {
			t.Fatalf("expected received_at descending, got %v", list)
		}
	}

	empty, err := repo.ListByUser(ctx, uuid.New())
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestMemory_ListByDevice(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()
	deviceID := uuid.New()
	userID := uuid.New()

	if err := repo.Save(ctx, newEntry(userID, deviceID, 10)); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := repo.Save(ctx, newEntry(userID, uuid.New(), 20)); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	list, err := repo.ListByDevice(ctx, deviceID)
	if err != nil {
		t.Fatalf("ListByDevice error: %v", err)
	}
	if len(list) != 1 || list[0].DeviceID != deviceID {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestMemory_LatestByUser(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	if _, err := repo.LatestByUser(ctx, userID); !errors.Is(err, common.ErrClipboardNotFound) {
		t.Fatalf("expected ErrClipboardNotFound, got %v", err)
	}

	for _, ts := range []int64{10, 30, 20} {
		if err := repo.Save(ctx, newEntry(userID, uuid.New(), ts)); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}

	latest, err := repo.LatestByUser(ctx, userID)
	if err != nil {
		t.Fatalf("LatestByUser error: %v", err)
	}
	if latest.ReceivedAt != 30 {
		t.Fatalf("expected latest received_at 30, got %d", latest.ReceivedAt)
	}
}

func TestMemory_DeleteByUser(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	for i := int64(0); i < 3; i++ {
		if err := repo.Save(ctx, newEntry(userID, uuid.New(), i)); err != nil {
			t.Fatalf("Save error: %v", err)
		}
	}
	other := newEntry(uuid.New(), uuid.New(), 5)
	if err := repo.Save(ctx, other); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	removed, err := repo.DeleteByUser(ctx, userID)
	if err != nil {
		t.Fatalf("DeleteByUser error: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	if repo.Len(ctx) != 1 {
		t.Fatalf("expected other user's entry to survive")
	}
}

func TestMemory_DeleteExpired(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.New()

	old := newEntry(userID, uuid.New(), 100)
	fresh := newEntry(userID, uuid.New(), 950)
	if err := repo.Save(ctx, old); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if err := repo.Save(ctx, fresh); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// retention 100s at now=1000: the entry from t=100 is expired,
	// the one from t=950 is not.
	removed, err := repo.DeleteExpired(ctx, 1000, 100)
	if err != nil {
		t.Fatalf("DeleteExpired error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	if _, err := repo.Get(ctx, old.ID); !errors.Is(err, common.ErrClipboardNotFound) {
		t.Fatalf("expected expired entry to be gone, got %v", err)
	}
	if _, err := repo.Get(ctx, fresh.ID); err != nil {
		t.Fatalf("expected fresh entry to survive, got %v", err)
	}
}
