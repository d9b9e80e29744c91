package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airpods() Product {
	return Product{Slug: "airpods-pro-2", Name: "Airpods Pro 2", Price: 5999, Image: "airpods 2.jpeg"}
}

func capProduct() Product {
	return Product{Slug: "adidas-baseball-cap", Name: "Adidas Cap", Price: 999, Image: "addidas cap.jpeg"}
}

func TestAddItemMergesSameSlug(t *testing.T) {
	e := NewEngine(NewMemStore())

	e.AddItem(airpods(), 1)
	e.AddItem(airpods(), 1)
	e.AddItem(airpods(), 3)

	snap := e.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 5, snap.Items[0].Quantity)
	assert.Equal(t, 5, snap.ItemCount)
}

func TestAddItemClampsSeedToOne(t *testing.T) {
	e := NewEngine(NewMemStore())

	e.AddItem(airpods(), 0)
	e.AddItem(capProduct(), -3)

	snap := e.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 1, snap.Items[0].Quantity)
	assert.Equal(t, 1, snap.Items[1].Quantity)
}

func TestDerivedAggregates(t *testing.T) {
	e := NewEngine(NewMemStore())

	e.AddItem(Product{Slug: "a", Name: "A", Price: 100}, 1)
	e.AddItem(Product{Slug: "a", Name: "A", Price: 100}, 1)

	snap := e.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, 2, snap.ItemCount)
	assert.Equal(t, 200.0, snap.Subtotal)
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	s1 := NewMemStore()
	s2 := NewMemStore()
	e1 := NewEngine(s1)
	e2 := NewEngine(s2)

	for _, e := range []*Engine{e1, e2} {
		e.AddItem(airpods(), 2)
		e.AddItem(capProduct(), 1)
	}

	e1.SetQuantity("airpods-pro-2", 0)
	e2.RemoveItem("airpods-pro-2")

	assert.Equal(t, e2.Snapshot(), e1.Snapshot())
}

func TestSetQuantityReplaces(t *testing.T) {
	e := NewEngine(NewMemStore())
	e.AddItem(airpods(), 2)

	e.SetQuantity("airpods-pro-2", 7)

	snap := e.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 7, snap.Items[0].Quantity)

	// negative quantity removes outright
	e.SetQuantity("airpods-pro-2", -1)
	assert.True(t, e.Snapshot().Empty())
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	e := NewEngine(NewMemStore())
	e.AddItem(airpods(), 1)

	e.RemoveItem("never-added")

	assert.Equal(t, 1, e.Snapshot().ItemCount)
}

func TestClear(t *testing.T) {
	e := NewEngine(NewMemStore())
	e.AddItem(airpods(), 2)
	e.AddItem(capProduct(), 1)

	e.Clear()

	assert.True(t, e.Snapshot().Empty())
	assert.Equal(t, 0.0, e.Snapshot().Subtotal)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := NewMemStore()
	e := NewEngine(store)
	e.AddItem(airpods(), 2)
	e.AddItem(capProduct(), 3)

	restored := NewEngine(store)

	assert.Equal(t, e.Snapshot(), restored.Snapshot())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	e := NewEngine(store)
	e.AddItem(airpods(), 2)
	e.RemoveItem("never-added")
	e.AddItem(capProduct(), 1)
	e.SetQuantity("adidas-baseball-cap", 4)

	restored := NewEngine(store)
	snap := restored.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, 6, snap.ItemCount)
	assert.Equal(t, 2*5999.0+4*999.0, snap.Subtotal)
}

func TestCorruptStoredCartRestoresEmpty(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Save(StorageKey, []byte("{not json")))

	e := NewEngine(store)

	assert.True(t, e.Snapshot().Empty())

	// and the engine is usable afterwards
	e.AddItem(airpods(), 1)
	assert.Equal(t, 1, e.Snapshot().ItemCount)
}

func TestRestoreDropsInvalidItems(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Save(StorageKey,
		[]byte(`[{"slug":"ok","name":"OK","price":10,"quantity":2},{"slug":"bad","quantity":0},{"name":"no-slug","quantity":3}]`)))

	e := NewEngine(store)

	snap := e.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "ok", snap.Items[0].Slug)
}

func TestSnapshotIsACopy(t *testing.T) {
	e := NewEngine(NewMemStore())
	e.AddItem(airpods(), 1)

	snap := e.Snapshot()
	snap.Items[0].Quantity = 99

	assert.Equal(t, 1, e.Snapshot().Items[0].Quantity)
}
