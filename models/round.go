package models

import "time"

type RoundStatus string

const (
	RoundActive   RoundStatus = "active"
	RoundFinished RoundStatus = "finished"
	RoundExpired  RoundStatus = "expired"
)

// GameRound records a single playthrough. Giving each round its own identity
// instead of a mutable per-user live score field keeps concurrent rounds for
// the same user from overwriting each other; at most one round per user is
// "active" at a time.
type GameRound struct {
	ID         string      `gorm:"primaryKey;size:36" json:"id"`
	UserID     uint        `gorm:"index;not null" json:"userId"`
	Score      int         `gorm:"default:0" json:"score"`
	Attempts   int         `gorm:"default:0" json:"attempts"`
	Matches    int         `gorm:"default:0" json:"matches"`
	Status     RoundStatus `gorm:"size:16;index;not null;default:'active'" json:"status"`
	StartedAt  time.Time   `json:"startedAt"`
	FinishedAt *time.Time  `json:"finishedAt,omitempty"`
}

// RoundPair is the durable outcome of one evaluated two-card selection.
// The round summary is rebuilt from these rows, not from client memory.
type RoundPair struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoundID   string    `gorm:"index;size:36;not null" json:"roundId"`
	Card1ID   uint      `gorm:"not null" json:"card1Id"`
	Card2ID   uint      `gorm:"not null" json:"card2Id"`
	IsMatch   bool      `json:"isMatch"`
	CreatedAt time.Time `json:"createdAt"`
}
