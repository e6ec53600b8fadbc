package models

// WardrobeItem is an ownership-scoped inventory row, same shape as a sensor
// reading but without the device indirection.
type WardrobeItem struct {
	ID       int64
	UserID   int64
	ItemName string
	ItemType string
}
