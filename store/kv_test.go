package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	kv, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok := kv.Get("cart")
	require.False(t, ok)

	require.NoError(t, kv.Set("cart", `[{"id":"p1"}]`))

	value, ok := kv.Get("cart")
	require.True(t, ok)
	require.Equal(t, `[{"id":"p1"}]`, value)

	// Overwrites replace the record in full.
	require.NoError(t, kv.Set("cart", "[]"))
	value, _ = kv.Get("cart")
	require.Equal(t, "[]", value)
}

func TestFileStoreIndependentRecords(t *testing.T) {
	kv, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Set("cart", "[1]"))
	require.NoError(t, kv.Set("wishlist", "[2]"))

	cart, _ := kv.Get("cart")
	wishlist, _ := kv.Get("wishlist")
	require.Equal(t, "[1]", cart)
	require.Equal(t, "[2]", wishlist)
}
