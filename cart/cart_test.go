package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewear-app/rewear-api/models"
	"github.com/rewear-app/rewear-api/storage"
)

func testItem(id string, points int) models.Item {
	return models.Item{
		ID:         id,
		Title:      "Item " + id,
		Category:   "tops",
		PointValue: points,
		Status:     models.ItemStatusAvailable,
	}
}

func TestAddIncrementsExistingEntry(t *testing.T) {
	c := New(storage.NewMemory())

	c.Add(testItem("a", 25))
	c.Add(testItem("a", 25))

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, 2, c.ItemCount())
}

func TestTotals(t *testing.T) {
	c := New(storage.NewMemory())
	c.Add(testItem("a", 25))
	c.Add(testItem("a", 25))
	c.Add(testItem("b", 40))

	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, 90, c.TotalPoints())
}

func TestSetQuantity(t *testing.T) {
	c := New(storage.NewMemory())
	c.Add(testItem("a", 25))

	c.SetQuantity("a", 5)
	assert.Equal(t, 5, c.ItemCount())

	// Zero or less removes the entry.
	c.SetQuantity("a", 0)
	assert.Empty(t, c.Entries())

	c.Add(testItem("b", 10))
	c.SetQuantity("b", -2)
	assert.Empty(t, c.Entries())
}

func TestRemoveAndClear(t *testing.T) {
	c := New(storage.NewMemory())
	c.Add(testItem("a", 25))
	c.Add(testItem("b", 40))

	c.Remove("a")
	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Item.ID)

	c.Clear()
	assert.Empty(t, c.Entries())
	assert.Equal(t, 0, c.TotalPoints())
}

func TestCartReconstructsFromStore(t *testing.T) {
	store := storage.NewMemory()

	c := New(store)
	c.Add(testItem("a", 25))
	c.SetQuantity("a", 3)

	rebuilt := New(store)
	entries := rebuilt.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Item.ID)
	assert.Equal(t, 3, entries[0].Quantity)
	assert.Equal(t, 75, rebuilt.TotalPoints())
}

func TestCartsAreScopedPerUser(t *testing.T) {
	store := storage.NewMemory()

	anna := NewForUser(store, "user-anna")
	anna.Add(testItem("a", 25))

	ben := NewForUser(store, "user-ben")
	assert.Empty(t, ben.Entries())

	annaAgain := NewForUser(store, "user-anna")
	assert.Len(t, annaAgain.Entries(), 1)
}

func TestCorruptCartStartsEmpty(t *testing.T) {
	store := storage.NewMemory()
	store.Set("rewear_cart", "][nonsense")

	c := New(store)
	assert.Empty(t, c.Entries())

	// Still usable, and the next write repairs the stored value.
	c.Add(testItem("a", 25))
	assert.Len(t, New(store).Entries(), 1)
}
