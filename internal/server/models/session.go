package models

import "time"

// Session is a server-issued opaque token proving an authenticated identity
// for a bounded time. A session whose user no longer exists is invalid and
// is treated as absent.
type Session struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
}

// Expired reports whether the session has outlived the given lifetime.
func (s *Session) Expired(now time.Time, lifetime time.Duration) bool {
	return now.Sub(s.CreatedAt) >= lifetime
}
