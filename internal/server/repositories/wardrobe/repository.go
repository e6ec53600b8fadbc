// Package wardrobe provides persistence for wardrobe items.
package wardrobe

import (
	"context"

	"github.com/vkotlyar/homesense/internal/server/models"
)

// Repository is the storage contract for wardrobe items. All reads and
// mutations are scoped to the owning user.
type Repository interface {
	// Create stores an item and returns its generated id.
	Create(ctx context.Context, item *models.WardrobeItem) (int64, error)

	// ListByUser returns the user's items.
	ListByUser(ctx context.Context, userID int64) ([]models.WardrobeItem, error)

	// Update replaces name and type of an owned item, or common.ErrorNotFound.
	Update(ctx context.Context, userID, id int64, itemName, itemType string) error

	// Delete removes an owned item, or common.ErrorNotFound.
	Delete(ctx context.Context, userID, id int64) error
}
