// Package collections maintains the deduplicated, persisted property
// collections behind the favorites and comparison features.
package collections

import (
	"context"
	"encoding/json"
	"sync"

	stderrors "estatehub/internal/common/errors"
	"estatehub/internal/common/logger"
	"estatehub/internal/common/metrics"
	"estatehub/internal/models"
	"estatehub/internal/storage"
)

const (
	// FavoritesKey and ComparisonKey are the persisted storage keys. They
	// match the keys the web client has always written, so existing saved
	// state loads unchanged.
	FavoritesKey  = "property-favorites"
	ComparisonKey = "property-comparison"

	// DefaultComparisonCapacity bounds the side-by-side comparison view.
	DefaultComparisonCapacity = 3
)

// Store is a keyed collection of condensed properties synchronized with a
// durable KV store. Entries are unique by ID and kept in insertion order.
// A capacity of 0 means unbounded; a positive capacity evicts the oldest
// entry (FIFO) when a new ID is added at the bound.
type Store struct {
	mu       sync.Mutex
	name     string
	key      string
	capacity int
	kv       storage.KV
	log      logger.Logger
	entries  []models.CondensedProperty
}

// NewFavorites builds the unbounded favorites collection, loading any
// previously persisted entries. A malformed payload is logged and treated
// as no prior data.
func NewFavorites(ctx context.Context, kv storage.KV, log logger.Logger) *Store {
	return newStore(ctx, "favorites", FavoritesKey, 0, kv, log)
}

// NewComparison builds the comparison collection with the default capacity.
func NewComparison(ctx context.Context, kv storage.KV, log logger.Logger) *Store {
	return NewComparisonWithCapacity(ctx, kv, log, DefaultComparisonCapacity)
}

// NewComparisonWithCapacity builds a comparison collection with an explicit
// bound. Capacity must be at least 1.
func NewComparisonWithCapacity(ctx context.Context, kv storage.KV, log logger.Logger, capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultComparisonCapacity
	}
	return newStore(ctx, "comparison", ComparisonKey, capacity, kv, log)
}

func newStore(ctx context.Context, name, key string, capacity int, kv storage.KV, log logger.Logger) *Store {
	s := &Store{
		name:     name,
		key:      key,
		capacity: capacity,
		kv:       kv,
		log:      log.WithFields(map[string]interface{}{"collection": name}),
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.Warn("failed to read persisted collection, starting empty", map[string]interface{}{
				"key":   s.key,
				"error": err.Error(),
			})
		}
		return
	}

	var entries []models.CondensedProperty
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		decodeErr := stderrors.NewStorageDecodeError(s.key, err.Error())
		s.log.Warn("persisted collection is malformed, starting empty", map[string]interface{}{
			"key":   s.key,
			"error": decodeErr.Error(),
		})
		return
	}

	// Defensive dedupe: the store never writes duplicates, but the payload
	// is externally editable.
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID == "" || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		s.entries = append(s.entries, e)
	}
	metrics.CollectionSize.WithLabelValues(s.name).Set(float64(len(s.entries)))
}

// Add inserts an entry unless its ID is already present. At capacity the
// oldest entry is evicted first; the add itself is never rejected. The full
// collection snapshot is persisted after the mutation.
func (s *Store) Add(ctx context.Context, entry models.CondensedProperty) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.containsLocked(entry.ID) {
		return nil
	}

	if s.capacity > 0 && len(s.entries) >= s.capacity {
		evicted := s.entries[0]
		s.entries = append(s.entries[:0:0], s.entries[1:]...)
		metrics.CollectionEvictions.WithLabelValues(s.name).Inc()
		s.log.Debug("evicted oldest entry at capacity", map[string]interface{}{
			"evictedId": evicted.ID,
			"capacity":  s.capacity,
		})
	}

	s.entries = append(s.entries, entry)
	metrics.CollectionMutations.WithLabelValues(s.name, "add").Inc()
	return s.persistLocked(ctx)
}

// Remove deletes the entry with the given ID; absent IDs are a no-op with
// no persistence write.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, e := range s.entries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	s.entries = append(s.entries[:idx:idx], s.entries[idx+1:]...)
	metrics.CollectionMutations.WithLabelValues(s.name, "remove").Inc()
	return s.persistLocked(ctx)
}

// Contains reports membership by ID without side effects.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(id)
}

func (s *Store) containsLocked(id string) bool {
	for _, e := range s.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Clear empties the collection and persists the empty snapshot. The key is
// written, not deleted, so a reload yields an empty collection rather than
// stale data.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	metrics.CollectionMutations.WithLabelValues(s.name, "clear").Inc()
	return s.persistLocked(ctx)
}

// List returns a copy of the entries in insertion order.
func (s *Store) List() []models.CondensedProperty {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CondensedProperty, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the current entry count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Capacity returns the bound, 0 for unbounded.
func (s *Store) Capacity() int {
	return s.capacity
}

func (s *Store) persistLocked(ctx context.Context) error {
	entries := s.entries
	if entries == nil {
		entries = []models.CondensedProperty{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return stderrors.NewStorageWriteError(s.key, err.Error())
	}

	metrics.CollectionSize.WithLabelValues(s.name).Set(float64(len(s.entries)))

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		metrics.StorageWriteFailures.WithLabelValues(s.key).Inc()
		s.log.Error("failed to persist collection", map[string]interface{}{
			"key":   s.key,
			"error": err.Error(),
		})
		return stderrors.NewStorageWriteError(s.key, err.Error())
	}
	return nil
}
