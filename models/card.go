package models

// GameMode is a programming-language category partitioning the card catalog
// (e.g. "Java", "Python"). Static reference data.
type GameMode struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;size:64;not null" json:"slug"`
}

// Card is a catalog card. MatchID is an equality tag pointing at the paired
// card's ID, not a foreign key — two cards match when either one's tag
// points at the other, so one-sided tagging is fine.
type Card struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Detail     string `gorm:"type:text;not null" json:"detail"`
	GameModeID uint   `gorm:"index;not null" json:"gameModeId"`
	MatchID    *uint  `json:"matchId,omitempty"`
}
