package snapshot_test

import (
	"sync"
	"testing"

	"courierapp/internal/adapters/out/snapshot"
	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeTestOrder(status order.Status) order.Order {
	return order.Order{ID: kernel.NewUUID(), Status: status}
}

func TestStore_PutAndGet(t *testing.T) {
	t.Run("should return the stored snapshot", func(t *testing.T) {
		store := snapshot.NewStore()
		o := storeTestOrder(order.StatusNew)

		store.Put(o)

		got, ok := store.Get(o.ID)
		require.True(t, ok)
		assert.Equal(t, o, got)
	})

	t.Run("should replace the previous snapshot for the same order", func(t *testing.T) {
		store := snapshot.NewStore()
		o := storeTestOrder(order.StatusNew)
		store.Put(o)

		o.Status = order.StatusAssigned
		store.Put(o)

		got, ok := store.Get(o.ID)
		require.True(t, ok)
		assert.Equal(t, order.StatusAssigned, got.Status)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("should miss for unknown id", func(t *testing.T) {
		store := snapshot.NewStore()

		_, ok := store.Get(kernel.NewUUID())
		assert.False(t, ok)
	})
}

func TestStore_PutAll(t *testing.T) {
	store := snapshot.NewStore()
	orders := []order.Order{
		storeTestOrder(order.StatusNew),
		storeTestOrder(order.StatusPaid),
		storeTestOrder(order.StatusDone),
	}

	store.PutAll(orders)

	assert.Equal(t, 3, store.Len())
	for _, o := range orders {
		_, ok := store.Get(o.ID)
		assert.True(t, ok)
	}
}

func TestStore_Remove(t *testing.T) {
	t.Run("should drop the snapshot", func(t *testing.T) {
		store := snapshot.NewStore()
		o := storeTestOrder(order.StatusNew)
		store.Put(o)

		store.Remove(o.ID)

		_, ok := store.Get(o.ID)
		assert.False(t, ok)
		assert.Equal(t, 0, store.Len())
	})

	t.Run("should tolerate removing an absent id", func(t *testing.T) {
		store := snapshot.NewStore()

		store.Remove(kernel.NewUUID())

		assert.Equal(t, 0, store.Len())
	})
}

func TestStore_Clear(t *testing.T) {
	store := snapshot.NewStore()
	store.PutAll([]order.Order{
		storeTestOrder(order.StatusNew),
		storeTestOrder(order.StatusInProgress),
	})

	store.Clear()

	assert.Equal(t, 0, store.Len())
}

func TestStore_Concurrency(t *testing.T) {
	store := snapshot.NewStore()

	const writers = 32
	var wg sync.WaitGroup
	wg.Add(writers)
	for range writers {
		go func() {
			defer wg.Done()
			o := storeTestOrder(order.StatusNew)
			store.Put(o)
			store.Get(o.ID)
			store.Remove(o.ID)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, store.Len())
}
