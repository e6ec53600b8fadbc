package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/dbx"
	"github.com/vkotlyar/homesense/internal/server/models"
	"github.com/vkotlyar/homesense/internal/server/repositories/readings"
	"github.com/vkotlyar/homesense/internal/server/repositories/repomanager"
)

// ReadingService handles the authenticated sensor pipeline and the raw
// unauthenticated ingest channel.
type ReadingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

// NewReadingService constructs a ReadingService.
func NewReadingService(db *sql.DB, m repomanager.RepositoryManager) *ReadingService {
	return &ReadingService{db: db, repomanager: m, now: time.Now}
}

// Insert stores a reading against one of the user's devices. A device the
// user does not own yields common.ErrorForbidden before anything is written.
// A zero timestamp is filled with the current time, truncated to seconds to
// match the stored precision.
func (s *ReadingService) Insert(ctx context.Context, userID int64, kind models.SensorKind, reading *models.Reading) (int64, error) {
	if reading.Timestamp.IsZero() {
		reading.Timestamp = s.now().Truncate(time.Second)
	}

	// The ownership check and the insert run in one transaction so the
	// device cannot be unregistered between the two.
	var id int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		owned, err := s.repomanager.Devices(tx).Owned(ctx, userID, reading.DeviceID)
		if err != nil {
			return fmt.Errorf("error checking device ownership: %w", err)
		}
		if !owned {
			return common.ErrorForbidden
		}

		id, err = s.repomanager.Readings(tx).Insert(ctx, kind, reading)
		if err != nil {
			return fmt.Errorf("error inserting reading: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Query returns the user's readings of the given kind, filtered.
func (s *ReadingService) Query(ctx context.Context, userID int64, kind models.SensorKind, filter readings.ListFilter) ([]models.Reading, error) {
	repo := s.repomanager.Readings(s.db)
	result, err := repo.List(ctx, kind, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing readings: %w", err)
	}
	return result, nil
}

// Get returns a single owned reading, or common.ErrorNotFound.
func (s *ReadingService) Get(ctx context.Context, userID int64, kind models.SensorKind, id int64) (*models.Reading, error) {
	repo := s.repomanager.Readings(s.db)
	return repo.GetByID(ctx, kind, userID, id)
}

// Update applies a partial update to an owned reading. Ownership is
// re-verified against the device named in the payload, not the stored row;
// a device the user does not own yields common.ErrorForbidden. An update
// with no fields yields common.ErrorInvalidRequest.
func (s *ReadingService) Update(ctx context.Context, userID int64, kind models.SensorKind, id int64, deviceID string, fields readings.UpdateFields) error {
	if deviceID == "" {
		return common.ErrorInvalidRequest
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		owned, err := s.repomanager.Devices(tx).Owned(ctx, userID, deviceID)
		if err != nil {
			return fmt.Errorf("error checking device ownership: %w", err)
		}
		if !owned {
			return common.ErrorForbidden
		}
		return s.repomanager.Readings(tx).Update(ctx, kind, userID, id, fields)
	})
}

// Delete removes an owned reading, or common.ErrorNotFound.
func (s *ReadingService) Delete(ctx context.Context, userID int64, kind models.SensorKind, id int64) error {
	repo := s.repomanager.Readings(s.db)
	return repo.Delete(ctx, kind, userID, id)
}

// Count returns the number of the user's readings of the given kind.
func (s *ReadingService) Count(ctx context.Context, userID int64, kind models.SensorKind) (int64, error) {
	repo := s.repomanager.Readings(s.db)
	return repo.Count(ctx, kind, userID)
}

// InsertRaw stores a sample on the unauthenticated ingest channel. The MAC
// does not have to be registered.
func (s *ReadingService) InsertRaw(ctx context.Context, sample *models.RawTemperature) (int64, error) {
	if sample.MACAddress == "" {
		return 0, common.ErrorInvalidRequest
	}
	repo := s.repomanager.RawTemperature(s.db)
	id, err := repo.Insert(ctx, sample)
	if err != nil {
		return 0, fmt.Errorf("error inserting raw sample: %w", err)
	}
	return id, nil
}

// RawByMAC returns the raw samples recorded for a MAC. No samples at all
// yields common.ErrorNotFound.
func (s *ReadingService) RawByMAC(ctx context.Context, mac string) ([]models.RawTemperature, error) {
	repo := s.repomanager.RawTemperature(s.db)
	result, err := repo.ListByMAC(ctx, mac)
	if err != nil {
		return nil, fmt.Errorf("error listing raw samples: %w", err)
	}
	if len(result) == 0 {
		return nil, common.ErrorNotFound
	}
	return result, nil
}
