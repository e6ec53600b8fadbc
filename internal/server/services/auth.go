// Package services contains server-side business logic. This file implements
// AuthService: account registration, credential verification, and the opaque
// session tokens carried by the session cookie.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vkotlyar/homesense/internal/common"
	"github.com/vkotlyar/homesense/internal/server/models"
	"github.com/vkotlyar/homesense/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// sessionCreateAttempts bounds retries when a freshly generated session
// identifier collides with a stored one.
const sessionCreateAttempts = 3

// AuthService provides signup, login, logout, and session resolution.
//
// Sessions expire server-side: Authenticate compares the stored creation
// time against the configured lifetime and deletes stale rows on read.
type AuthService struct {
	db              *sql.DB
	repomanager     repomanager.RepositoryManager
	sessionLifetime time.Duration
	now             func() time.Time
}

// NewAuthService constructs an AuthService with the given session lifetime.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, sessionLifetime time.Duration) *AuthService {
	return &AuthService{
		db:              db,
		repomanager:     m,
		sessionLifetime: sessionLifetime,
		now:             time.Now,
	}
}

// Signup creates a new account. The password is stored as a bcrypt hash.
// A duplicate email yields common.ErrorConflict.
func (s *AuthService) Signup(ctx context.Context, name, email, password, pid, location string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, common.ErrorInvalidRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		PID:          pid,
		Location:     location,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies credentials and opens a session. Unknown email and wrong
// password are both reported as common.ErrorUnauthenticated; storage
// failures are not.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrorUnauthenticated
	}

	sessions := s.repomanager.Sessions(s.db)
	for i := 0; i < sessionCreateAttempts; i++ {
		session := &models.Session{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			CreatedAt: s.now(),
		}
		err = sessions.Create(ctx, session)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, common.ErrorConflict) {
			return nil, fmt.Errorf("error creating session: %w", err)
		}
	}
	return nil, fmt.Errorf("error creating session: %w", err)
}

// Logout closes a session. Closing an unknown session is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	repo := s.repomanager.Sessions(s.db)
	if err := repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

// Authenticate resolves a session identifier to a user id. Missing and
// expired sessions yield common.ErrorUnauthenticated; expired rows are
// removed on read. Storage failures pass through so callers do not mistake
// an outage for a logged-out user.
func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, common.ErrorUnauthenticated
	}

	repo := s.repomanager.Sessions(s.db)
	session, err := repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, common.ErrorUnauthenticated
		}
		return 0, fmt.Errorf("error looking up session: %w", err)
	}

	if session.Expired(s.now(), s.sessionLifetime) {
		// Best effort; an expired session must not authenticate even if
		// the cleanup fails.
		_ = repo.Delete(ctx, sessionID)
		return 0, common.ErrorUnauthenticated
	}

	return session.UserID, nil
}

// UserInfo returns the account profile for a user id.
func (s *AuthService) UserInfo(ctx context.Context, userID int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	return user, nil
}
