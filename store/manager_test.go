package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManagerReusesSessionContainer(t *testing.T) {
	manager := NewManager(t.TempDir())

	require.NoError(t, manager.With("guest_abc", func(c *Container) {
		c.AddToCart(hawaiianPizza())
	}))

	var items int
	require.NoError(t, manager.With("guest_abc", func(c *Container) {
		items = c.TotalItems()
	}))
	require.Equal(t, 1, items)

	// A different session sees its own empty container.
	require.NoError(t, manager.With("guest_xyz", func(c *Container) {
		items = c.TotalItems()
	}))
	require.Equal(t, 0, items)
}

func TestManagerRehydratesFromDisk(t *testing.T) {
	dir := t.TempDir()

	manager := NewManager(dir)
	require.NoError(t, manager.With("guest_abc", func(c *Container) {
		c.AddToCart(hawaiianPizza())
		c.AddToCart(hawaiianPizza())
	}))

	// A fresh manager over the same directory hydrates the same state,
	// like a reloaded browser session.
	reloaded := NewManager(dir)
	var total float64
	require.NoError(t, reloaded.With("guest_abc", func(c *Container) {
		total = c.TotalPrice()
	}))
	require.Equal(t, 640.0, total)
}

func TestManagerRejectsUnsafeGuestIDs(t *testing.T) {
	manager := NewManager(t.TempDir())

	for _, id := range []string{"", "../escape", "a/b", "a b", "id."} {
		err := manager.With(id, func(c *Container) {})
		require.Error(t, err, "guest id %q", id)
	}
}
