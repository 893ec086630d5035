package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []FoodRecord {
	return []FoodRecord{
		{Name: "Apple", Calories: 52},
		{Name: "Banana", Calories: 89},
		{Name: "Chicken Breast", Calories: 165},
		{Name: "Chicken Soup", Calories: 75},
	}
}

func TestCatalogIsolatedFromCallerSlice(t *testing.T) {
	records := testRecords()
	c := New(records)

	records[0].Name = "Mutated"
	assert.Equal(t, "Apple", c.All()[0].Name)
	assert.Equal(t, 4, c.Len())
}

func TestCatalogSearch(t *testing.T) {
	c := New(testRecords())

	assert.Len(t, c.Search("chicken", 0), 2)
	assert.Len(t, c.Search("CHICKEN", 1), 1)
	assert.Len(t, c.Search("  apple  ", 0), 1)
	assert.Empty(t, c.Search("steak", 0))
	assert.Nil(t, c.Search("", 0))
}

func TestCatalogLookup(t *testing.T) {
	c := New(testRecords())

	got, ok := c.Lookup("chicken breast")
	require.True(t, ok)
	assert.Equal(t, 165.0, got.Calories)

	_, ok = c.Lookup("tofu")
	assert.False(t, ok)
}

func TestStoreReplaceSwapsSnapshot(t *testing.T) {
	store := NewStore(New(testRecords()))
	old := store.Snapshot()

	store.Replace(New([]FoodRecord{{Name: "Tofu", Calories: 76}}))

	assert.Equal(t, 4, old.Len())
	assert.Equal(t, 1, store.Snapshot().Len())
	_, ok := store.Snapshot().Lookup("tofu")
	assert.True(t, ok)
}
