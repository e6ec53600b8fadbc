package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/server/models"
	"github.com/vkotlyar/homesense/internal/server/repositories/repomanager"
)

// DeviceService manages the registry binding MAC addresses to owners.
type DeviceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewDeviceService constructs a DeviceService.
func NewDeviceService(db *sql.DB, m repomanager.RepositoryManager) *DeviceService {
	return &DeviceService{db: db, repomanager: m}
}

// Register binds a MAC address to the user. A MAC already registered to any
// user yields common.ErrorConflict.
func (s *DeviceService) Register(ctx context.Context, userID int64, deviceID string) error {
	if deviceID == "" {
		return common.ErrorInvalidRequest
	}
	repo := s.repomanager.Devices(s.db)
	return repo.Create(ctx, userID, deviceID)
}

// Rename re-keys one of the user's devices. Readings follow the device: the
// schema cascades the key change into the per-kind tables.
func (s *DeviceService) Rename(ctx context.Context, userID int64, oldID, newID string) error {
	if newID == "" {
		return common.ErrorInvalidRequest
	}
	repo := s.repomanager.Devices(s.db)
	return repo.Rename(ctx, userID, oldID, newID)
}

// Unregister removes one of the user's devices along with its readings.
func (s *DeviceService) Unregister(ctx context.Context, userID int64, deviceID string) error {
	repo := s.repomanager.Devices(s.db)
	return repo.Delete(ctx, userID, deviceID)
}

// List returns the user's registered devices.
func (s *DeviceService) List(ctx context.Context, userID int64) ([]models.Device, error) {
	repo := s.repomanager.Devices(s.db)
	result, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing devices: %w", err)
	}
	return result, nil
}
