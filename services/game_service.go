package services

import (
	"errors"
	"fmt"
	"time"

	"memory-match-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GameService struct {
	DB *gorm.DB
}

func NewGameService(db *gorm.DB) *GameService {
	return &GameService{DB: db}
}

// RoundSummary is the durable result of a finished round, rebuilt from
// RoundPair rows rather than whatever the client remembers.
type RoundSummary struct {
	RoundID  string             `json:"roundId,omitempty"`
	Score    int                `json:"score"`
	Attempts int                `json:"attempts"`
	Matches  int                `json:"matches"`
	Pairs    []models.RoundPair `json:"pairs,omitempty"`
}

// EvaluateMatch reports whether two cards form a pair. The tag only needs to
// point one way: a matches b when a.MatchID == b.ID or the reverse, which
// makes the predicate symmetric by construction.
func (s *GameService) EvaluateMatch(card1ID, card2ID uint) (bool, error) {
	card1, err := s.CardDetail(card1ID)
	if err != nil {
		return false, err
	}
	card2, err := s.CardDetail(card2ID)
	if err != nil {
		return false, err
	}
	isMatch := (card1.MatchID != nil && *card1.MatchID == card2.ID) ||
		(card2.MatchID != nil && *card2.MatchID == card1.ID)
	return isMatch, nil
}

// StartRound opens a fresh round at score 0. Any round still active for the
// user is expired first, so "start" is always safe to repeat.
func (s *GameService) StartRound(userID uint) (*models.GameRound, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	var round *models.GameRound
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.GameRound{}).
			Where("user_id = ? AND status = ?", userID, models.RoundActive).
			Update("status", models.RoundExpired).Error; err != nil {
			return err
		}
		round = &models.GameRound{
			ID:        uuid.NewString(),
			UserID:    userID,
			Status:    models.RoundActive,
			StartedAt: time.Now(),
		}
		return tx.Create(round).Error
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

// ApplyResult evaluates a two-card selection against the catalog and settles
// it into the user's active round: +1 on match, -1 on mismatch (no floor),
// one attempt either way. Returns the post-update round and the verdict.
func (s *GameService) ApplyResult(userID, card1ID, card2ID uint) (*models.GameRound, bool, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, false, err
	}

	isMatch, err := s.EvaluateMatch(card1ID, card2ID)
	if err != nil {
		return nil, false, err
	}

	delta, matchInc := -1, 0
	if isMatch {
		delta, matchInc = 1, 1
	}

	var round models.GameRound
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND status = ?", userID, models.RoundActive).
			First(&round).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No round in flight: open one implicitly, matching the old
			// behaviour where the live score was always there to touch.
			round = models.GameRound{
				ID:        uuid.NewString(),
				UserID:    userID,
				Status:    models.RoundActive,
				StartedAt: time.Now(),
			}
			if err := tx.Create(&round).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		// Single atomic increment. A read-then-write here would lose updates
		// under rapid double-clicks on the same round.
		if err := tx.Model(&models.GameRound{}).Where("id = ?", round.ID).
			UpdateColumns(map[string]interface{}{
				"score":    gorm.Expr("score + ?", delta),
				"attempts": gorm.Expr("attempts + 1"),
				"matches":  gorm.Expr("matches + ?", matchInc),
			}).Error; err != nil {
			return err
		}

		pair := models.RoundPair{
			RoundID: round.ID,
			Card1ID: card1ID,
			Card2ID: card2ID,
			IsMatch: isMatch,
		}
		if err := tx.Create(&pair).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", round.ID).First(&round).Error
	})
	if err != nil {
		return nil, false, err
	}
	return &round, isMatch, nil
}

// FinishRound closes the user's active round and returns its summary. With
// nothing in flight it still succeeds and reports a zero summary, so
// start-then-finish always lands back at 0.
func (s *GameService) FinishRound(userID uint) (*RoundSummary, error) {
	if err := s.requireUser(userID); err != nil {
		return nil, err
	}

	var round models.GameRound
	err := s.DB.Where("user_id = ? AND status = ?", userID, models.RoundActive).
		First(&round).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &RoundSummary{}, nil
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.DB.Model(&round).Updates(map[string]interface{}{
		"status":      models.RoundFinished,
		"finished_at": &now,
	}).Error; err != nil {
		return nil, err
	}

	var pairs []models.RoundPair
	if err := s.DB.Where("round_id = ?", round.ID).
		Order("id ASC").
		Find(&pairs).Error; err != nil {
		return nil, err
	}

	return &RoundSummary{
		RoundID:  round.ID,
		Score:    round.Score,
		Attempts: round.Attempts,
		Matches:  round.Matches,
		Pairs:    pairs,
	}, nil
}

func (s *GameService) GameModes() ([]models.GameMode, error) {
	var modes []models.GameMode
	err := s.DB.Order("id ASC").Find(&modes).Error
	return modes, err
}

func (s *GameService) CardsByGameMode(gameModeID uint) ([]models.Card, error) {
	var cards []models.Card
	err := s.DB.Where("game_mode_id = ?", gameModeID).Find(&cards).Error
	return cards, err
}

// CardsByModeSlug resolves a mode by its slug ("java", "python") and returns
// its cards. Unknown slugs fail with ErrNotFound.
func (s *GameService) CardsByModeSlug(modeSlug string) ([]models.Card, error) {
	var mode models.GameMode
	if err := s.DB.Where("slug = ?", modeSlug).First(&mode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("game mode %q: %w", modeSlug, ErrNotFound)
		}
		return nil, err
	}
	return s.CardsByGameMode(mode.ID)
}

func (s *GameService) CardDetail(cardID uint) (*models.Card, error) {
	var card models.Card
	if err := s.DB.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("card %d: %w", cardID, ErrNotFound)
		}
		return nil, err
	}
	return &card, nil
}

// ExpireStaleRounds marks active rounds older than ttl as expired and
// reports how many were touched.
func (s *GameService) ExpireStaleRounds(ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	res := s.DB.Model(&models.GameRound{}).
		Where("status = ? AND started_at <= ?", models.RoundActive, cutoff).
		Update("status", models.RoundExpired)
	return res.RowsAffected, res.Error
}

func (s *GameService) requireUser(userID uint) error {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return err
	}
	return nil
}
