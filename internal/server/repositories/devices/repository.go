// Package devices provides persistence for the device registry: the binding
// between a MAC address and its owning user.
package devices

import (
	"context"

	"github.com/vkotlyar/homesense/internal/server/models"
)

// Repository is the storage contract for registered devices.
//
// Mutations are always scoped by owner; a row owned by a different user is
// indistinguishable from an absent row (common.ErrorNotFound), so callers
// cannot probe for existence.
type Repository interface {
	// Create registers a device for a user. The MAC is unique system-wide;
	// a duplicate yields common.ErrorConflict regardless of owner.
	Create(ctx context.Context, userID int64, deviceID string) error

	// Rename re-keys a device owned by userID. common.ErrorNotFound when no
	// owned row matches oldID; common.ErrorConflict when newID is taken.
	Rename(ctx context.Context, userID int64, oldID, newID string) error

	// Delete unregisters a device owned by userID, or common.ErrorNotFound.
	Delete(ctx context.Context, userID int64, deviceID string) error

	// ListByUser returns all devices registered to userID.
	ListByUser(ctx context.Context, userID int64) ([]models.Device, error)

	// Owned reports whether deviceID is registered to userID.
	Owned(ctx context.Context, userID int64, deviceID string) (bool, error)
}
