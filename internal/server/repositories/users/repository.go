// Package users provides persistence for user accounts.
package users

import (
	"context"

	"github.com/vkotlyar/homesense/internal/server/models"
)

// Repository is the storage contract for user accounts.
type Repository interface {
	// Create inserts a new user and returns it with the assigned ID.
	// A duplicate email yields common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given ID or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}
