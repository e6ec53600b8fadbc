// Package sessions provides persistence for login sessions.
package sessions

import (
	"context"

	"github.com/vkotlyar/homesense/internal/server/models"
)

// Repository is the storage contract for sessions. Lifetime enforcement
// lives in the auth service; the repository only stores and retrieves rows.
type Repository interface {
	// Create inserts a session. A colliding identifier yields
	// common.ErrorConflict so the caller can regenerate and retry.
	Create(ctx context.Context, session *models.Session) error

	// Get returns the session with the given identifier, or
	// common.ErrorNotFound when it is absent or its user no longer exists.
	Get(ctx context.Context, id string) (*models.Session, error)

	// Delete removes a session. Deleting a non-existent session is not
	// an error.
	Delete(ctx context.Context, id string) error
}
