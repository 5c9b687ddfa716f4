package models

import "time"

// User is a player account. The in-progress score is deliberately NOT a
// column here — every round carries its own score row (see GameRound), so
// two tabs playing at once cannot stomp on each other.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
