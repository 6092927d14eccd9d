package dataaccess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewear-app/rewear-api/models"
	"github.com/rewear-app/rewear-api/storage"
)

func newTestClient(t *testing.T) (*Client, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	return NewClient(store), store
}

func TestSeedsMaterializeOnFirstOpen(t *testing.T) {
	c, store := newTestClient(t)

	items, err := c.Items().All()
	require.NoError(t, err)
	assert.Len(t, items, 12)

	// Opening the collection writes the seed set through to the store.
	raw, ok := store.Get("rewear_items")
	require.True(t, ok)
	assert.Contains(t, raw, "item_tops_1")
}

func TestSeedsMaterializeOnEmptyValue(t *testing.T) {
	c, store := newTestClient(t)
	store.Set("rewear_items", "")

	items, err := c.Items().All()
	require.NoError(t, err)
	assert.Len(t, items, 12)

	raw, _ := store.Get("rewear_items")
	assert.NotEmpty(t, raw)
}

func TestCorruptCollectionFallsBackToSeeds(t *testing.T) {
	c, store := newTestClient(t)
	store.Set("rewear_items", "{not valid json")

	items, err := c.Items().All()
	require.NoError(t, err)
	assert.Len(t, items, 12)

	// The corrupt value stays in place until the next successful write.
	raw, _ := store.Get("rewear_items")
	assert.Equal(t, "{not valid json", raw)
}

func TestFilterComposition(t *testing.T) {
	c, _ := newTestClient(t)

	tops, err := c.Items().Eq("status", "available").Eq("category", "tops").All()
	require.NoError(t, err)
	require.Len(t, tops, 2)
	for _, it := range tops {
		assert.Equal(t, "tops", it.Category)
		assert.Equal(t, models.ItemStatusAvailable, it.Status)
	}

	none, err := c.Items().Eq("category", "tops").Eq("category", "shoes").All()
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEqUnresolvedFieldMatchesNothing(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Items().Eq("no_such_column", "x").All()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNeqKeepsUnresolvedField(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Items().Neq("no_such_column", "x").All()
	require.NoError(t, err)
	assert.Len(t, rows, 12)
}

func TestIlikeStripsWildcardsAndIgnoresCase(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Items().Ilike("title", "%SILK%").All()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, it := range rows {
		assert.True(t, strings.Contains(strings.ToLower(it.Title), "silk"))
	}

	// A percent sign in the middle is stripped too, not treated as a gap.
	rows, err = c.Items().Ilike("title", "si%lk").All()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestIlikeNonStringFieldMatchesNothing(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Items().Ilike("point_value", "25").All()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestIn(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Items().In("category", "tops", "shoes").All()
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestOrConditions(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Items().Or(
		OrCond{Field: "category", Op: "eq", Value: "tops"},
		OrCond{Field: "title", Op: "ilike", Value: "%sneakers%"},
	).All()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestOrUnknownOperatorMatchesNothing(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Items().Or(OrCond{Field: "point_value", Op: "gt", Value: 10}).All()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOrDottedPathNeverResolves(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.SwapRequests().Or(
		OrCond{Field: "item.user_id", Op: "eq", Value: "demo-user-1"},
	).All()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestOrderByIsStable(t *testing.T) {
	c, _ := newTestClient(t)

	// Every seeded item shares the same status, so sorting on it must keep
	// the stored order, run after run.
	sorted, err := c.Items().OrderBy("status", true).All()
	require.NoError(t, err)
	plain, err := c.Items().All()
	require.NoError(t, err)
	require.Equal(t, len(plain), len(sorted))
	for i := range plain {
		assert.Equal(t, plain[i].ID, sorted[i].ID)
	}

	// Ties on point value keep stored order too: item_tops_1 is stored
	// before item_accessories_2 and both are worth 25.
	byPoints, err := c.Items().OrderBy("point_value", true).All()
	require.NoError(t, err)
	assert.Equal(t, "item_tops_1", byPoints[0].ID)
	assert.Equal(t, "item_accessories_2", byPoints[1].ID)
}

func TestOrderByDescending(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Items().OrderBy("point_value", false).All()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, 85, rows[0].PointValue)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].PointValue, rows[i].PointValue)
	}
}

func TestStagesApplyInCallOrder(t *testing.T) {
	c, _ := newTestClient(t)

	sortThenLimit, err := c.Items().OrderBy("point_value", true).Limit(1).All()
	require.NoError(t, err)
	require.Len(t, sortThenLimit, 1)
	assert.Equal(t, "item_tops_1", sortThenLimit[0].ID)

	limitThenSort, err := c.Items().Limit(3).OrderBy("point_value", false).All()
	require.NoError(t, err)
	require.Len(t, limitThenSort, 3)
	// Only the first three stored rows were in play, so the top result is
	// the most valuable of those, not of the whole catalog.
	assert.Equal(t, "item_bottoms_1", limitThenSort[0].ID)
}

func TestSingle(t *testing.T) {
	c, _ := newTestClient(t)

	it, err := c.Items().Eq("id", "item_tops_1").Single()
	require.NoError(t, err)
	require.NotNil(t, it)
	assert.Equal(t, "Classic White T-Shirt", it.Title)

	missing, err := c.Items().Eq("id", "no_such_item").Single()
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInsertAssignsIDStampsAndDefaults(t *testing.T) {
	c, _ := newTestClient(t)

	inserted, err := c.SwapRequests().Insert(models.SwapRequest{
		RequesterID: "demo-user-5",
		ItemID:      "item_shoes_2",
		Message:     "Interested!",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(inserted.ID, "swap_"))
	assert.Equal(t, models.SwapStatusPending, inserted.Status)
	assert.False(t, inserted.CreatedAt.IsZero())
	assert.False(t, inserted.UpdatedAt.IsZero())

	all, err := c.SwapRequests().All()
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestInsertOrderDefaults(t *testing.T) {
	c, _ := newTestClient(t)

	inserted, err := c.Orders().Insert(models.Order{UserID: "demo-user-2", TotalPoints: 40})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, inserted.OrderStatus)
	assert.Equal(t, models.PaymentStatusPending, inserted.PaymentStatus)
}

func TestInsertKeepsProvidedID(t *testing.T) {
	c, _ := newTestClient(t)

	inserted, err := c.Items().Insert(models.Item{ID: "item_custom", Title: "Custom", Category: "tops", PointValue: 10})
	require.NoError(t, err)
	assert.Equal(t, "item_custom", inserted.ID)
}

func TestInsertIgnoresEarlierFilters(t *testing.T) {
	c, _ := newTestClient(t)

	// A filtered query still appends to the full stored collection.
	_, err := c.Items().Eq("category", "tops").Insert(models.Item{Title: "New Listing", Category: "shoes", PointValue: 30})
	require.NoError(t, err)

	all, err := c.Items().All()
	require.NoError(t, err)
	assert.Len(t, all, 13)
}

func TestWritesVisibleToFreshClient(t *testing.T) {
	c, store := newTestClient(t)

	inserted, err := c.Items().Insert(models.Item{Title: "Corduroy Pants", Category: "bottoms", PointValue: 45})
	require.NoError(t, err)

	other := NewClient(store)
	found, err := other.Items().Eq("id", inserted.ID).Single()
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Corduroy Pants", found.Title)
}

func TestUpdateMergesPatch(t *testing.T) {
	c, _ := newTestClient(t)
	before, err := c.Items().Eq("id", "item_tops_1").Single()
	require.NoError(t, err)
	require.NotNil(t, before)

	updated, err := c.Items().Update(map[string]any{"id": "item_tops_1", "point_value": 30})
	require.NoError(t, err)

	assert.Equal(t, 30, updated.PointValue)
	assert.Equal(t, before.Title, updated.Title)
	assert.Equal(t, before.Category, updated.Category)
	assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))

	reread, err := c.Items().Eq("id", "item_tops_1").Single()
	require.NoError(t, err)
	require.NotNil(t, reread)
	assert.Equal(t, 30, reread.PointValue)
}

func TestUpdateUnknownIDLeavesCollectionUntouched(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Items().Update(map[string]any{"id": "no_such_item", "point_value": 999})
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := c.Items().All()
	require.NoError(t, err)
	assert.Len(t, all, 12)
	for _, it := range all {
		assert.NotEqual(t, 999, it.PointValue)
	}
}

func TestUnknownCollectionIsANoOp(t *testing.T) {
	c, store := newTestClient(t)

	rows, err := c.Collection("no_such_table").All()
	require.NoError(t, err)
	assert.Empty(t, rows)

	rec := map[string]any{"id": "x1", "name": "ghost"}
	out, err := c.Collection("no_such_table").Insert(rec)
	require.NoError(t, err)
	assert.Equal(t, rec, out)

	patched, err := c.Collection("no_such_table").Update(map[string]any{"id": "x1", "name": "still a ghost"})
	require.NoError(t, err)
	assert.Equal(t, "still a ghost", patched["name"])

	// Nothing was written anywhere.
	_, ok := store.Get("no_such_table")
	assert.False(t, ok)
}

func TestDynamicCollectionReadsTypedData(t *testing.T) {
	c, _ := newTestClient(t)

	rows, err := c.Collection("items").Eq("category", "dresses").All()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, "dresses", r["category"])
	}
}
