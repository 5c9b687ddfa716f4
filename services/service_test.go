package services

import (
	"fmt"
	"strings"
	"testing"

	"memory-match-system/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Shared-cache named memory DB so every pooled connection sees the
	// same data; the name keeps tests isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.GameMode{},
		&models.Card{},
		&models.GameRound{},
		&models.RoundPair{},
		&models.CollectionEntry{},
	))
	return db
}

// seedTestCatalog creates one mode with two concept/description pairs:
// 1 <-> 2 and 3 <-> 4, tagged one-sided (concept -> description).
func seedTestCatalog(t *testing.T, db *gorm.DB) models.GameMode {
	t.Helper()

	mode := models.GameMode{Name: "Java", Slug: "java"}
	require.NoError(t, db.Create(&mode).Error)

	two, four := uint(2), uint(4)
	cards := []models.Card{
		{ID: 1, Detail: "Class", GameModeID: mode.ID, MatchID: &two},
		{ID: 2, Detail: "Blueprint for objects", GameModeID: mode.ID},
		{ID: 3, Detail: "Object", GameModeID: mode.ID, MatchID: &four},
		{ID: 4, Detail: "Instance of a class", GameModeID: mode.ID},
	}
	require.NoError(t, db.Create(&cards).Error)
	return mode
}

func seedTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{Username: username, Password: "not-a-real-hash"}
	require.NoError(t, db.Create(&user).Error)
	return user
}
