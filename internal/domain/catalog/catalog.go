// Package catalog provides the in-memory food catalog consumed by the meal
// planner. A Catalog is an immutable snapshot; the Store swaps snapshots
// atomically so concurrent readers always observe either the old or the new
// catalog, never a partially-updated view.
package catalog

import (
	"strings"
	"sync/atomic"
)

// FoodRecord describes one food known to the catalog. The name is the
// record's identity for all keyword matching. Nutrient values are per
// serving; units must be consistent across the whole catalog.
type FoodRecord struct {
	Name               string  `json:"name"`
	Category           string  `json:"category,omitempty"`
	Calories           float64 `json:"calories"`
	Protein            float64 `json:"protein"`
	Carbs              float64 `json:"carbs"`
	Fat                float64 `json:"fat"`
	Fiber              float64 `json:"fiber,omitempty"`
	Sugar              float64 `json:"sugar,omitempty"`
	ServingWeightGrams float64 `json:"serving_weight_grams,omitempty"`
}

// Catalog is an immutable collection of food records. Construct with New;
// never mutate the records after construction.
type Catalog struct {
	records []FoodRecord
}

// New builds a catalog from the given records. The slice is copied so later
// mutations by the caller cannot leak into the snapshot.
func New(records []FoodRecord) *Catalog {
	copied := make([]FoodRecord, len(records))
	copy(copied, records)
	return &Catalog{records: copied}
}

// All returns every record in the catalog. Callers must treat the returned
// slice as read-only.
func (c *Catalog) All() []FoodRecord {
	return c.records
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Search returns up to limit records whose name contains the query,
// case-insensitively. A non-positive limit means no limit.
func (c *Catalog) Search(query string, limit int) []FoodRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []FoodRecord
	for _, r := range c.records {
		if strings.Contains(strings.ToLower(r.Name), query) {
			matches = append(matches, r)
			if limit > 0 && len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// Lookup returns the first record whose name equals the given name,
// case-insensitively.
func (c *Catalog) Lookup(name string) (FoodRecord, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, r := range c.records {
		if strings.ToLower(r.Name) == name {
			return r, true
		}
	}
	return FoodRecord{}, false
}

// Store holds the current catalog snapshot and supports atomic replacement.
type Store struct {
	current atomic.Pointer[Catalog]
}

// NewStore creates a store holding the given initial snapshot.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.current.Store(c)
	return s
}

// Snapshot returns the current catalog. The returned catalog is immutable
// and safe to use for the duration of a request even if Replace runs
// concurrently.
func (s *Store) Snapshot() *Catalog {
	return s.current.Load()
}

// Replace swaps in a new snapshot. In-flight readers keep the snapshot they
// already hold.
func (s *Store) Replace(c *Catalog) {
	s.current.Store(c)
}
