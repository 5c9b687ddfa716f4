package models

import "time"

// CollectionEntry is a card pair a user chose to keep. The composite unique
// index stops repeated saves of the same tuple from stacking duplicate rows.
type CollectionEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_collection_tuple" json:"userId"`
	Card1ID    uint      `gorm:"not null;uniqueIndex:idx_collection_tuple" json:"card1Id"`
	Card2ID    uint      `gorm:"not null;uniqueIndex:idx_collection_tuple" json:"card2Id"`
	GameModeID uint      `gorm:"not null;uniqueIndex:idx_collection_tuple" json:"gameModeId"`
	Card1      Card      `gorm:"foreignKey:Card1ID" json:"card1"`
	Card2      Card      `gorm:"foreignKey:Card2ID" json:"card2"`
	CreatedAt  time.Time `json:"createdAt"`
}
