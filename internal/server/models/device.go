package models

// Device is a physical sensor unit identified by its MAC address.
// The MAC is unique system-wide: a device belongs to exactly one user
// at a time.
type Device struct {
	ID       int64
	UserID   int64
	DeviceID string // MAC address
}
