package utils

import (
	"encoding/json"
	"fmt"

	"memory-match-system/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Catalog is the wire/seed format of the card catalog: one entry per game
// mode, cards carrying the same matchId tagging scheme as the Card model.
type Catalog struct {
	Modes []CatalogMode `json:"modes"`
}

type CatalogMode struct {
	Name  string        `json:"name"`
	Cards []CatalogCard `json:"cards"`
}

type CatalogCard struct {
	ID     uint   `json:"id"`
	Detail string `json:"detail"`
	// MatchID tags the paired card. Only one side of a pair needs it.
	MatchID *uint `json:"matchId,omitempty"`
}

// ParseCatalog decodes a catalog object (e.g. fetched from R2).
func ParseCatalog(data []byte) (Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	if len(cat.Modes) == 0 {
		return Catalog{}, fmt.Errorf("catalog has no game modes")
	}
	for _, m := range cat.Modes {
		if m.Name == "" {
			return Catalog{}, fmt.Errorf("catalog mode with empty name")
		}
		for _, c := range m.Cards {
			if c.ID == 0 {
				return Catalog{}, fmt.Errorf("mode %q: card with id 0", m.Name)
			}
		}
	}
	return cat, nil
}

// SeedCatalog upserts the catalog into the database. Modes are matched by
// name, cards by id, so re-seeding (boot or catalog sync) is idempotent and
// picks up edited card text.
func SeedCatalog(db *gorm.DB, cat Catalog) error {
	for _, m := range cat.Modes {
		mode := models.GameMode{Name: m.Name, Slug: slug.Make(m.Name)}
		if err := db.Where(models.GameMode{Name: m.Name}).
			Assign(models.GameMode{Slug: mode.Slug}).
			FirstOrCreate(&mode).Error; err != nil {
			return fmt.Errorf("failed to seed game mode %q: %w", m.Name, err)
		}

		if len(m.Cards) == 0 {
			continue
		}
		cards := make([]models.Card, 0, len(m.Cards))
		for _, c := range m.Cards {
			cards = append(cards, models.Card{
				ID:         c.ID,
				Detail:     c.Detail,
				GameModeID: mode.ID,
				MatchID:    c.MatchID,
			})
		}
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"detail", "game_mode_id", "match_id"}),
		}).Create(&cards).Error; err != nil {
			return fmt.Errorf("failed to seed cards for %q: %w", m.Name, err)
		}
	}
	return nil
}

// DefaultCatalog is the built-in card set the service runs with when no
// remote catalog object is configured. Each concept card tags its
// description card; the reverse direction is covered by the match rule.
func DefaultCatalog() Catalog {
	return Catalog{Modes: []CatalogMode{
		{Name: "Java", Cards: cardPairs(1, [][2]string{
			{"Class", "Blueprint for objects"},
			{"Object", "Instance of a class"},
			{"Method", "Function inside a class"},
			{"Variable", "Container for data"},
			{"Array", "Collection of elements"},
			{"Loop", "Repeated execution"},
			{"Inheritance", "Class extends another"},
			{"Exception", "Error handling mechanism"},
		})},
		{Name: "Python", Cards: cardPairs(17, [][2]string{
			{"List", "Ordered mutable sequence"},
			{"Tuple", "Immutable sequence"},
			{"Dictionary", "Key-value mapping"},
			{"Generator", "Lazily produced values"},
			{"Decorator", "Wraps a function"},
			{"Lambda", "Anonymous inline function"},
			{"Module", "Importable code file"},
			{"Slice", "Subsequence of a sequence"},
		})},
		{Name: "JavaScript", Cards: cardPairs(33, [][2]string{
			{"Closure", "Function capturing its scope"},
			{"Promise", "Eventual async result"},
			{"Callback", "Function passed to a function"},
			{"Prototype", "Shared object template"},
			{"Event Loop", "Schedules async tasks"},
			{"Hoisting", "Declarations moved to scope top"},
			{"Arrow Function", "Concise function syntax"},
			{"DOM", "Document object tree"},
		})},
	}}
}

// cardPairs lays out concept/description pairs at consecutive ids starting
// from base, tagging concept → description.
func cardPairs(base uint, items [][2]string) []CatalogCard {
	cards := make([]CatalogCard, 0, len(items)*2)
	for i, item := range items {
		conceptID := base + uint(i)*2
		descID := conceptID + 1
		cards = append(cards,
			CatalogCard{ID: conceptID, Detail: item[0], MatchID: &descID},
			CatalogCard{ID: descID, Detail: item[1]},
		)
	}
	return cards
}
