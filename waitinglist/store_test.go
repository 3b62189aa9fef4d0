package waitinglist

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "waitinglist.json"))
}

func testEntry(memberNo int) Entry {
	return Entry{
		MemberNo:  memberNo,
		FirstName: "John",
		LastName:  "Smith",
		Email:     "john.smith@example.com",
		Status:    "waiting",
	}
}

func TestStoreAddAndEntries(t *testing.T) {
	store := testStore(t)

	already, err := store.Add("15/03/2025", "17:15", testEntry(101))
	require.NoError(t, err)
	assert.False(t, already)

	entries, err := store.Entries("15/03/2025", "17:15")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 101, entries[0].MemberNo)
	assert.Equal(t, "waiting", entries[0].Status)
}

func TestStoreAddIsIdempotent(t *testing.T) {
	store := testStore(t)

	_, err := store.Add("15/03/2025", "17:15", testEntry(101))
	require.NoError(t, err)

	already, err := store.Add("15/03/2025", "17:15", testEntry(101))
	require.NoError(t, err)
	assert.True(t, already)

	entries, err := store.Entries("15/03/2025", "17:15")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreRemove(t *testing.T) {
	store := testStore(t)

	_, err := store.Add("15/03/2025", "17:15", testEntry(101))
	require.NoError(t, err)
	_, err = store.Add("15/03/2025", "17:15", testEntry(102))
	require.NoError(t, err)

	require.NoError(t, store.Remove("15/03/2025", "17:15", 101))

	entries, err := store.Entries("15/03/2025", "17:15")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 102, entries[0].MemberNo)
}

func TestStoreRemoveUnknownMember(t *testing.T) {
	store := testStore(t)

	_, err := store.Add("15/03/2025", "17:15", testEntry(101))
	require.NoError(t, err)

	err = store.Remove("15/03/2025", "17:15", 999)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestStoreRemoveLastEntryPrunesSlot(t *testing.T) {
	store := testStore(t)

	_, err := store.Add("15/03/2025", "17:15", testEntry(101))
	require.NoError(t, err)

	require.NoError(t, store.Remove("15/03/2025", "17:15", 101))

	raw, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "15/03/2025")
}

func TestStoreCleanup(t *testing.T) {
	store := testStore(t)

	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	_, err := store.Add("14/03/2025", "06:15", testEntry(101))
	require.NoError(t, err)
	_, err = store.Add("15/03/2025", "06:15", testEntry(102))
	require.NoError(t, err)
	_, err = store.Add("16/03/2025", "06:15", testEntry(103))
	require.NoError(t, err)

	require.NoError(t, store.Cleanup(now))

	entries, err := store.Entries("14/03/2025", "06:15")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Today stays even though the morning slot has already passed.
	entries, err = store.Entries("15/03/2025", "06:15")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	entries, err = store.Entries("16/03/2025", "06:15")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreMissingFileIsEmpty(t *testing.T) {
	store := testStore(t)

	entries, err := store.Entries("15/03/2025", "17:15")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
