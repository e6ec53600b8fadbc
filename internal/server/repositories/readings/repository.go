// Package readings provides persistence for sensor readings. Each sensor
// kind is stored in its own table with an identical column layout.
package readings

import (
	"context"
	"time"

	"github.com/vkotlyar/homesense/internal/server/models"
)

// ListFilter narrows a reading query. Nil bounds are open ended. OrderBy is
// honored only for the whitelisted columns; anything else leaves the result
// in storage order.
type ListFilter struct {
	Start   *time.Time
	End     *time.Time
	OrderBy string
}

// UpdateFields carries a partial update. Nil fields are left untouched.
type UpdateFields struct {
	Value     *float64
	Unit      *string
	Timestamp *time.Time
}

// Repository is the storage contract for sensor readings.
//
// Every operation that touches existing rows is scoped to the owning user
// through the device registry; rows belonging to other users read as absent.
type Repository interface {
	// Insert stores a reading and returns its generated id.
	Insert(ctx context.Context, kind models.SensorKind, reading *models.Reading) (int64, error)

	// List returns the user's readings of the given kind, filtered.
	List(ctx context.Context, kind models.SensorKind, userID int64, filter ListFilter) ([]models.Reading, error)

	// GetByID returns a single owned reading, or common.ErrorNotFound.
	GetByID(ctx context.Context, kind models.SensorKind, userID, id int64) (*models.Reading, error)

	// Update applies the non-nil fields to an owned reading. At least one
	// field must be set. common.ErrorNotFound when no owned row matches.
	Update(ctx context.Context, kind models.SensorKind, userID, id int64, fields UpdateFields) error

	// Delete removes an owned reading, or common.ErrorNotFound.
	Delete(ctx context.Context, kind models.SensorKind, userID, id int64) error

	// Count returns the number of the user's readings of the given kind.
	Count(ctx context.Context, kind models.SensorKind, userID int64) (int64, error)
}
