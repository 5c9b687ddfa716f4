package services

import (
	"testing"

	"memory-match-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionAddValidatesCards(t *testing.T) {
	db := newTestDB(t)
	mode := seedTestCatalog(t, db)
	user := seedTestUser(t, db, "alice")
	svc := NewCollectionService(db)

	_, err := svc.Add(user.ID, 1, 999, mode.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Add(user.ID, 999, 2, mode.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionAddExpandsCards(t *testing.T) {
	db := newTestDB(t)
	mode := seedTestCatalog(t, db)
	user := seedTestUser(t, db, "alice")
	svc := NewCollectionService(db)

	entry, err := svc.Add(user.ID, 1, 2, mode.ID)
	require.NoError(t, err)
	assert.Equal(t, "Class", entry.Card1.Detail)
	assert.Equal(t, "Blueprint for objects", entry.Card2.Detail)
}

func TestCollectionAddDeduplicates(t *testing.T) {
	db := newTestDB(t)
	mode := seedTestCatalog(t, db)
	user := seedTestUser(t, db, "alice")
	svc := NewCollectionService(db)

	first, err := svc.Add(user.ID, 1, 2, mode.ID)
	require.NoError(t, err)
	second, err := svc.Add(user.ID, 1, 2, mode.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.CollectionEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCollectionRemoveMissingTupleIsNoOp(t *testing.T) {
	db := newTestDB(t)
	mode := seedTestCatalog(t, db)
	user := seedTestUser(t, db, "alice")
	svc := NewCollectionService(db)

	_, err := svc.Add(user.ID, 1, 2, mode.ID)
	require.NoError(t, err)

	// Tuple never saved: succeeds without touching anything.
	require.NoError(t, svc.Remove(user.ID, 3, 4, mode.ID))

	entries, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCollectionRemove(t *testing.T) {
	db := newTestDB(t)
	mode := seedTestCatalog(t, db)
	user := seedTestUser(t, db, "alice")
	svc := NewCollectionService(db)

	_, err := svc.Add(user.ID, 1, 2, mode.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(user.ID, 1, 2, mode.ID))

	entries, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCollectionClearIdempotent(t *testing.T) {
	db := newTestDB(t)
	mode := seedTestCatalog(t, db)
	user := seedTestUser(t, db, "alice")
	svc := NewCollectionService(db)

	_, err := svc.Add(user.ID, 1, 2, mode.ID)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, 3, 4, mode.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(user.ID))
	require.NoError(t, svc.Clear(user.ID))

	entries, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCollectionListScopedToUser(t *testing.T) {
	db := newTestDB(t)
	mode := seedTestCatalog(t, db)
	alice := seedTestUser(t, db, "alice")
	bob := seedTestUser(t, db, "bob")
	svc := NewCollectionService(db)

	_, err := svc.Add(alice.ID, 1, 2, mode.ID)
	require.NoError(t, err)
	_, err = svc.Add(bob.ID, 3, 4, mode.ID)
	require.NoError(t, err)

	entries, err := svc.List(alice.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, alice.ID, entries[0].UserID)
	assert.EqualValues(t, 1, entries[0].Card1ID)
}
