package models

import "time"

// User is the root of the ownership model: sessions, devices, wardrobe items
// and (through devices) sensor readings all resolve back to a user.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	PID          string
	Location     string
	CreatedAt    time.Time
}
