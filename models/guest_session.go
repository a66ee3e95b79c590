package models

import "time"

// GuestSession identifies a shopper's browser session. The session owns
// the cart and wishlist records in the local key-value store; it has no
// relation to admin authentication.
type GuestSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
