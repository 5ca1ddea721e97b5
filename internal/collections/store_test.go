package collections

import (
	"context"
	"encoding/json"
	"testing"

	"estatehub/internal/common/logger"
	"estatehub/internal/models"
	"estatehub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func entry(id string) models.CondensedProperty {
	return models.CondensedProperty{
		ID:       id,
		Title:    "Listing " + id,
		Price:    100000,
		Location: "Austin, TX",
		Type:     models.TypeSale,
	}
}

func newTestFavorites(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	kv := storage.NewMemory()
	return NewFavorites(context.Background(), kv, logger.NewTestLogger(t)), kv
}

// ==========================
// Favorites
// ==========================

func TestFavorites_AddIsIdempotent(t *testing.T) {
	s, _ := newTestFavorites(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, entry("A")))
	require.NoError(t, s.Add(ctx, entry("A")))

	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("A"))
}

func TestFavorites_RemoveIsIdempotent(t *testing.T) {
	s, _ := newTestFavorites(t)
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, entry("A")))
	require.NoError(t, s.Remove(ctx, "missing"))
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Remove(ctx, "A"))
	require.NoError(t, s.Remove(ctx, "A"))
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("A"))
}

func TestFavorites_ListKeepsInsertionOrder(t *testing.T) {
	s, _ := newTestFavorites(t)
	ctx := context.Background()

	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, s.Add(ctx, entry(id)))
	}

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "C", got[0].ID)
	assert.Equal(t, "A", got[1].ID)
	assert.Equal(t, "B", got[2].ID)
}

func TestFavorites_PersistenceRoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	s := NewFavorites(ctx, kv, logger.NewNoOpLogger())
	require.NoError(t, s.Add(ctx, entry("A")))
	require.NoError(t, s.Add(ctx, entry("B")))

	// A fresh store over the same KV must reconstruct the same id set.
	reloaded := NewFavorites(ctx, kv, logger.NewNoOpLogger())
	assert.Equal(t, 2, reloaded.Len())
	assert.True(t, reloaded.Contains("A"))
	assert.True(t, reloaded.Contains("B"))
}

func TestFavorites_ClearWritesEmptySnapshot(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	s := NewFavorites(ctx, kv, logger.NewNoOpLogger())
	require.NoError(t, s.Add(ctx, entry("A")))
	require.NoError(t, s.Clear(ctx))

	// The key must still exist, holding an empty collection.
	raw, err := kv.Get(ctx, FavoritesKey)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", raw)

	reloaded := NewFavorites(ctx, kv, logger.NewNoOpLogger())
	assert.Equal(t, 0, reloaded.Len())
}

func TestFavorites_MalformedPayloadStartsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, FavoritesKey, "{not json"))

	s := NewFavorites(ctx, kv, logger.NewNoOpLogger())
	assert.Equal(t, 0, s.Len())

	// The store must still be usable and overwrite the bad payload.
	require.NoError(t, s.Add(ctx, entry("A")))
	raw, err := kv.Get(ctx, FavoritesKey)
	require.NoError(t, err)

	var entries []models.CondensedProperty
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "A", entries[0].ID)
}

func TestFavorites_LoadDeduplicatesByID(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	payload, err := json.Marshal([]models.CondensedProperty{entry("A"), entry("A"), entry("B")})
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, FavoritesKey, string(payload)))

	s := NewFavorites(ctx, kv, logger.NewNoOpLogger())
	assert.Equal(t, 2, s.Len())
}

// ==========================
// Comparison (capacity-bounded)
// ==========================

// The original web client replaced the newest slot on overflow; the agreed
// contract here is FIFO eviction of the oldest entry, pinned below.
func TestComparisonStore_EvictsOldestWhenFull(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	s := NewComparison(ctx, kv, logger.NewNoOpLogger())

	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, s.Add(ctx, entry(id)))
	}

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].ID)
	assert.Equal(t, "C", got[1].ID)
	assert.Equal(t, "D", got[2].ID)
	assert.False(t, s.Contains("A"))
}

func TestComparisonStore_NeverExceedsCapacity(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	s := NewComparison(ctx, kv, logger.NewNoOpLogger())

	ids := []string{"A", "B", "C", "D", "E", "F", "G", "A", "C", "H"}
	for _, id := range ids {
		require.NoError(t, s.Add(ctx, entry(id)))
		assert.LessOrEqual(t, s.Len(), DefaultComparisonCapacity)
	}
}

func TestComparisonStore_AddExistingAtCapacityDoesNotEvict(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	s := NewComparison(ctx, kv, logger.NewNoOpLogger())

	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, s.Add(ctx, entry(id)))
	}
	// Re-adding a present id is a no-op, not an eviction cycle.
	require.NoError(t, s.Add(ctx, entry("B")))

	got := s.List()
	require.Len(t, got, 3)
	assert.Equal(t, "A", got[0].ID)
	assert.True(t, s.Contains("A"))
}

func TestComparisonStore_CustomCapacity(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	s := NewComparisonWithCapacity(ctx, kv, logger.NewNoOpLogger(), 2)

	require.Equal(t, 2, s.Capacity())
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, s.Add(ctx, entry(id)))
	}

	got := s.List()
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ID)
	assert.Equal(t, "C", got[1].ID)
}

func TestComparisonStore_PersistsAcrossReload(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	s := NewComparison(ctx, kv, logger.NewNoOpLogger())
	require.NoError(t, s.Add(ctx, entry("A")))
	require.NoError(t, s.Add(ctx, entry("B")))

	reloaded := NewComparison(ctx, kv, logger.NewNoOpLogger())
	got := reloaded.List()
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].ID)
	assert.Equal(t, "B", got[1].ID)
}

// ==========================
// Storage failure paths
// ==========================

type failingKV struct {
	storage.KV
	failSet bool
}

func (f *failingKV) Get(ctx context.Context, key string) (string, error) {
	return f.KV.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key, value string) error {
	if f.failSet {
		return assert.AnError
	}
	return f.KV.Set(ctx, key, value)
}

func TestStore_AddReturnsWriteErrorButKeepsEntry(t *testing.T) {
	kv := &failingKV{KV: storage.NewMemory(), failSet: true}
	ctx := context.Background()
	s := NewFavorites(ctx, kv, logger.NewNoOpLogger())

	err := s.Add(ctx, entry("A"))
	require.Error(t, err)

	// Mutation precedes the write, so the in-memory state is updated.
	assert.True(t, s.Contains("A"))
}
