package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/therafiali/woocommerce-storefront/cart"
	"github.com/therafiali/woocommerce-storefront/models"
)

func product(id uint, name, price string) models.Product {
	return models.Product{
		ID:    id,
		Name:  name,
		Price: price,
		Images: []models.ProductImage{
			{Src: "https://shop.example/img/" + name + ".jpg"},
		},
	}
}

func TestAddItemMergesByProductID(t *testing.T) {
	store := cart.Open(cart.NewMemoryStorage(), "woocommerce_cart:test")

	store.AddItem(product(1, "mug", "10.00"))
	store.AddItem(product(1, "mug", "10.00"))
	store.AddItem(product(2, "plate", "5.00"))

	items := store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, uint(2), items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, "https://shop.example/img/mug.jpg", items[0].Image)
}

func TestAddItemSnapshotsPriceAtAddTime(t *testing.T) {
	store := cart.Open(cart.NewMemoryStorage(), "woocommerce_cart:test")

	store.AddItem(product(1, "mug", "10.00"))
	// Same product at a new catalog price; the snapshot must not move.
	store.AddItem(product(1, "mug", "99.00"))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 10.00, items[0].Price)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestQuantityInvariants(t *testing.T) {
	store := cart.Open(cart.NewMemoryStorage(), "woocommerce_cart:test")

	store.AddItem(product(1, "mug", "10.00"))
	store.AddItem(product(2, "plate", "5.00"))
	store.AddItem(product(1, "mug", "10.00"))
	store.SetQuantity(2, 7)
	store.RemoveItem(3) // absent, no-op
	store.SetQuantity(1, 3)

	seen := map[uint]bool{}
	for _, item := range store.Items() {
		assert.False(t, seen[item.ProductID], "duplicate line item for product %d", item.ProductID)
		seen[item.ProductID] = true
		assert.GreaterOrEqual(t, item.Quantity, 1)
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	storage := cart.NewMemoryStorage()

	left := cart.Open(storage, "woocommerce_cart:left")
	right := cart.Open(storage, "woocommerce_cart:right")
	for _, s := range []*cart.Store{left, right} {
		s.AddItem(product(1, "mug", "10.00"))
		s.AddItem(product(2, "plate", "5.00"))
	}

	assert.True(t, left.SetQuantity(1, 0))
	assert.True(t, right.RemoveItem(1))

	assert.Equal(t, right.Items(), left.Items())
}

func TestSetQuantityAbsentIsNoop(t *testing.T) {
	store := cart.Open(cart.NewMemoryStorage(), "woocommerce_cart:test")
	store.AddItem(product(1, "mug", "10.00"))

	assert.False(t, store.SetQuantity(99, 4))
	assert.False(t, store.RemoveItem(99))

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestTotalAndCount(t *testing.T) {
	store := cart.Open(cart.NewMemoryStorage(), "woocommerce_cart:test")

	store.AddItem(product(1, "mug", "10.00"))
	store.AddItem(product(1, "mug", "10.00"))
	store.AddItem(product(2, "plate", "5.00"))

	assert.Equal(t, 25.00, store.Total())
	assert.Equal(t, 3, store.Count())
}

func TestTotalIsOrderIndependent(t *testing.T) {
	a := cart.Open(cart.NewMemoryStorage(), "woocommerce_cart:a")
	a.AddItem(product(2, "plate", "5.00"))
	a.AddItem(product(1, "mug", "10.00"))
	a.AddItem(product(1, "mug", "10.00"))

	b := cart.Open(cart.NewMemoryStorage(), "woocommerce_cart:b")
	b.AddItem(product(1, "mug", "10.00"))
	b.AddItem(product(1, "mug", "10.00"))
	b.AddItem(product(2, "plate", "5.00"))

	assert.Equal(t, a.Total(), b.Total())
	assert.Equal(t, a.Count(), b.Count())
}

func TestTotalRoundsToCents(t *testing.T) {
	store := cart.Open(cart.NewMemoryStorage(), "woocommerce_cart:test")
	store.AddItem(product(1, "sticker", "0.10"))
	store.SetQuantity(1, 3)

	assert.Equal(t, 0.30, store.Total())
}

func TestPersistReloadRoundTrip(t *testing.T) {
	storage := cart.NewMemoryStorage()
	key := "woocommerce_cart:roundtrip"

	store := cart.Open(storage, key)
	store.AddItem(product(1, "mug", "10.00"))
	store.AddItem(product(2, "plate", "5.00"))
	store.SetQuantity(1, 4)

	reloaded := cart.Open(storage, key)
	assert.Equal(t, store.Items(), reloaded.Items())
	assert.Equal(t, store.Total(), reloaded.Total())
	assert.Equal(t, store.Count(), reloaded.Count())
}

func TestMalformedPersistedCartLoadsEmpty(t *testing.T) {
	storage := cart.NewMemoryStorage()
	key := "woocommerce_cart:bad"
	require.NoError(t, storage.Save(key, []byte("{not json")))

	store := cart.Open(storage, key)
	assert.Empty(t, store.Items())
	assert.Equal(t, 0, store.Count())
}

func TestClearPersistsEmptyState(t *testing.T) {
	storage := cart.NewMemoryStorage()
	key := "woocommerce_cart:clear"

	store := cart.Open(storage, key)
	store.AddItem(product(1, "mug", "10.00"))
	store.Clear()

	reloaded := cart.Open(storage, key)
	assert.Empty(t, reloaded.Items())
}
