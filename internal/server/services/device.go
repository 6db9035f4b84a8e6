package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/devices"
	"github.com/google/uuid"
)

// DeviceService manages the per-user device registry.
type DeviceService struct {
	repo devices.Repository
	now  func() time.Time
}

func NewDeviceService(repo devices.Repository) *DeviceService {
	return &DeviceService{repo: repo, now: time.Now}
}

// Register records a new device for ownerID. The repository assigns the id
// and timestamps.
func (s *DeviceService) Register(ctx context.Context, ownerID uuid.UUID, name string) (*models.Device, error) {
	return s.repo.Create(ctx, &models.Device{Name: name, UserID: ownerID})
}

// List returns all devices owned by ownerID, most recently created first.
func (s *DeviceService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.Device, error) {
	return s.repo.ListByUser(ctx, ownerID)
}

// Get returns device id, enforcing that requester owns it.
func (s *DeviceService) Get(ctx context.Context, id uuid.UUID, requester uuid.UUID) (*models.Device, error) {
	device, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrDeviceNotFound
		}
		return nil, err
	}
	if device.UserID != requester {
		return nil, common.ErrForbidden
	}
	return device, nil
}

// Touch bumps the device's last-seen timestamp and returns the updated
// record. Ownership is checked the same way as in Get.
func (s *DeviceService) Touch(ctx context.Context, id uuid.UUID, requester uuid.UUID) (*models.Device, error) {
	device, err := s.Get(ctx, id, requester)
	if err != nil {
		return nil, err
	}
	lastSeen := s.now().Unix()
	if err := s.repo.Touch(ctx, id, lastSeen); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrDeviceNotFound
		}
		return nil, err
	}
	device.LastSeen = lastSeen
	return device, nil
}

// Remove deletes device id after verifying requester owns it.
func (s *DeviceService) Remove(ctx context.Context, id uuid.UUID, requester uuid.UUID) error {
	if _, err := s.Get(ctx, id, requester); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrDeviceNotFound
		}
		return err
	}
	return nil
}
