package store

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stone-software/pizza-house/models"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	records map[string]string
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, bool) {
	value, ok := s.records[key]
	return value, ok
}

func (s *memStore) Set(key, value string) error {
	s.records[key] = value
	return nil
}

// failStore reads fine but rejects every write, like an exhausted quota.
type failStore struct {
	memStore
}

func (s *failStore) Set(key, value string) error {
	return errors.New("quota exceeded")
}

func hawaiianPizza() models.Product {
	return models.Product{ID: "p1", Name: "Гавайська", Price: 320, CategoryID: "pizza"}
}

func meatPizza() models.Product {
	discount := 340.0
	return models.Product{ID: "p2", Name: "Супер м’ясо", Price: 380, DiscountPrice: &discount, CategoryID: "pizza"}
}

func TestAddToCartIncrementsExistingLine(t *testing.T) {
	container := NewContainer(newMemStore())
	product := hawaiianPizza()

	container.AddToCart(product)
	container.AddToCart(product)
	container.AddToCart(product)

	cart := container.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, "p1", cart[0].ID)
	require.Equal(t, 3, cart[0].Quantity)
	require.Equal(t, 3, container.TotalItems())
	require.Equal(t, 960.0, container.TotalPrice())
}

func TestAddToCartSameProductTwice(t *testing.T) {
	container := NewContainer(newMemStore())

	container.AddToCart(hawaiianPizza())
	container.AddToCart(hawaiianPizza())

	cart := container.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, 2, cart[0].Quantity)
	require.Equal(t, 2, container.TotalItems())
	require.Equal(t, 640.0, container.TotalPrice())
}

func TestTotalPriceUsesDiscountPrice(t *testing.T) {
	container := NewContainer(newMemStore())

	container.AddToCart(meatPizza())
	container.AddToCart(hawaiianPizza())

	require.Equal(t, 340.0+320.0, container.TotalPrice())
}

func TestUpdateQuantity(t *testing.T) {
	container := NewContainer(newMemStore())
	container.AddToCart(hawaiianPizza())

	container.UpdateQuantity("p1", 5)
	require.Equal(t, 5, container.Cart()[0].Quantity)

	// Below 1 is a no-op, not a removal.
	container.UpdateQuantity("p1", 0)
	require.Equal(t, 5, container.Cart()[0].Quantity)

	container.UpdateQuantity("p1", -3)
	require.Equal(t, 5, container.Cart()[0].Quantity)

	// Unknown product id changes nothing.
	container.UpdateQuantity("nope", 2)
	require.Len(t, container.Cart(), 1)
}

func TestRemoveFromCart(t *testing.T) {
	container := NewContainer(newMemStore())
	container.AddToCart(hawaiianPizza())
	container.AddToCart(meatPizza())

	container.RemoveFromCart("p1")
	cart := container.Cart()
	require.Len(t, cart, 1)
	require.Equal(t, "p2", cart[0].ID)

	// Absent id is a no-op.
	container.RemoveFromCart("p1")
	require.Len(t, container.Cart(), 1)
}

func TestClearCartResetsTotals(t *testing.T) {
	container := NewContainer(newMemStore())
	container.AddToCart(hawaiianPizza())
	container.AddToCart(meatPizza())

	container.ClearCart()
	require.Empty(t, container.Cart())
	require.Equal(t, 0, container.TotalItems())
	require.Equal(t, 0.0, container.TotalPrice())

	// Idempotent.
	container.ClearCart()
	require.Empty(t, container.Cart())
}

func TestToggleWishlistInvolution(t *testing.T) {
	container := NewContainer(newMemStore())
	product := hawaiianPizza()

	require.False(t, container.IsInWishlist("p1"))

	container.ToggleWishlist(product)
	require.True(t, container.IsInWishlist("p1"))

	container.ToggleWishlist(product)
	require.False(t, container.IsInWishlist("p1"))
	require.Empty(t, container.Wishlist())
}

func TestHydrateFromStore(t *testing.T) {
	kv := newMemStore()
	lines := []models.CartLine{{Product: hawaiianPizza(), Quantity: 2}}
	data, err := json.Marshal(lines)
	require.NoError(t, err)
	require.NoError(t, kv.Set("cart", string(data)))

	wishlist := []models.Product{meatPizza()}
	data, err = json.Marshal(wishlist)
	require.NoError(t, err)
	require.NoError(t, kv.Set("wishlist", string(data)))

	container := NewContainer(kv)
	require.True(t, container.Initialized())
	require.Equal(t, 2, container.TotalItems())
	require.Equal(t, 640.0, container.TotalPrice())
	require.True(t, container.IsInWishlist("p2"))
}

func TestHydrateCorruptRecordStartsEmpty(t *testing.T) {
	kv := newMemStore()
	require.NoError(t, kv.Set("cart", "{not json"))
	require.NoError(t, kv.Set("wishlist", "also not json"))

	container := NewContainer(kv)
	require.True(t, container.Initialized())
	require.Empty(t, container.Cart())
	require.Empty(t, container.Wishlist())
	require.Equal(t, 0.0, container.TotalPrice())
}

func TestHydrateMissingRecordsStartsEmpty(t *testing.T) {
	container := NewContainer(newMemStore())
	require.True(t, container.Initialized())
	require.Empty(t, container.Cart())
}

func TestMutationsWriteThrough(t *testing.T) {
	kv := newMemStore()
	container := NewContainer(kv)

	container.AddToCart(hawaiianPizza())

	raw, ok := kv.Get("cart")
	require.True(t, ok)
	var persisted []models.CartLine
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 1)
	require.Equal(t, 1, persisted[0].Quantity)

	// Every mutation overwrites the record in full.
	container.AddToCart(hawaiianPizza())
	raw, _ = kv.Get("cart")
	require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
	require.Len(t, persisted, 1)
	require.Equal(t, 2, persisted[0].Quantity)

	container.ClearCart()
	raw, _ = kv.Get("cart")
	require.JSONEq(t, "[]", raw)
}

func TestWriteFailureKeepsInMemoryState(t *testing.T) {
	container := NewContainer(&failStore{memStore: *newMemStore()})

	container.AddToCart(hawaiianPizza())
	container.ToggleWishlist(meatPizza())

	require.Equal(t, 1, container.TotalItems())
	require.True(t, container.IsInWishlist("p2"))
}
