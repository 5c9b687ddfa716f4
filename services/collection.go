package services

import (
	"errors"
	"fmt"

	"memory-match-system/models"

	"gorm.io/gorm"
)

type CollectionService struct {
	DB *gorm.DB
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{DB: db}
}

// Add saves a card pair to the user's collection. Both cards must exist.
// Saving the same tuple again returns the existing entry instead of
// stacking a duplicate row.
func (s *CollectionService) Add(userID, card1ID, card2ID, gameModeID uint) (*models.CollectionEntry, error) {
	for _, id := range []uint{card1ID, card2ID} {
		var card models.Card
		if err := s.DB.First(&card, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("card %d: %w", id, ErrNotFound)
			}
			return nil, err
		}
	}

	entry := models.CollectionEntry{
		UserID:     userID,
		Card1ID:    card1ID,
		Card2ID:    card2ID,
		GameModeID: gameModeID,
	}
	if err := s.DB.Where(models.CollectionEntry{
		UserID:     userID,
		Card1ID:    card1ID,
		Card2ID:    card2ID,
		GameModeID: gameModeID,
	}).FirstOrCreate(&entry).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Preload("Card1").Preload("Card2").
		First(&entry, entry.ID).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove deletes every entry matching the exact tuple. Zero matches is not
// an error.
func (s *CollectionService) Remove(userID, card1ID, card2ID, gameModeID uint) error {
	return s.DB.
		Where("user_id = ? AND card1_id = ? AND card2_id = ? AND game_mode_id = ?",
			userID, card1ID, card2ID, gameModeID).
		Delete(&models.CollectionEntry{}).Error
}

// Clear wipes the user's whole collection. No-op if already empty.
func (s *CollectionService) Clear(userID uint) error {
	return s.DB.Where("user_id = ?", userID).
		Delete(&models.CollectionEntry{}).Error
}

// List returns the user's entries with both card records expanded.
func (s *CollectionService) List(userID uint) ([]models.CollectionEntry, error) {
	var entries []models.CollectionEntry
	err := s.DB.Preload("Card1").Preload("Card2").
		Where("user_id = ?", userID).
		Find(&entries).Error
	return entries, err
}
