// Package rawtemps provides persistence for the unauthenticated ingest
// channel. Rows are keyed by MAC address alone and are independent of the
// device registry.
package rawtemps

import (
	"context"

	"github.com/vkotlyar/homesense/internal/server/models"
)

// Repository is the storage contract for raw temperature ingest.
type Repository interface {
	// Insert stores a raw sample and returns its generated id.
	Insert(ctx context.Context, sample *models.RawTemperature) (int64, error)

	// ListByMAC returns all samples recorded for a MAC, oldest first.
	ListByMAC(ctx context.Context, mac string) ([]models.RawTemperature, error)
}
