package store

import (
	"encoding/json"
	"log"

	"github.com/stone-software/pizza-house/models"
)

const (
	cartKey     = "cart"
	wishlistKey = "wishlist"
)

// Container holds a shopper's cart and wishlist in memory and mirrors
// every mutation to the session's key-value store. Hydration never
// fails: a missing or unparsable record starts the container empty.
//
// A container is single-goroutine by contract; callers that share one
// across requests must serialize access (see Manager).
type Container struct {
	kv          Store
	cart        []models.CartLine
	wishlist    []models.Product
	initialized bool
}

func NewContainer(kv Store) *Container {
	c := &Container{
		kv:       kv,
		cart:     []models.CartLine{},
		wishlist: []models.Product{},
	}
	c.hydrate()
	return c
}

func (c *Container) hydrate() {
	if raw, ok := c.kv.Get(cartKey); ok {
		var lines []models.CartLine
		if err := json.Unmarshal([]byte(raw), &lines); err != nil {
			log.Printf("⚠️ Corrupt cart record, starting empty: %v", err)
		} else if lines != nil {
			c.cart = lines
		}
	}
	if raw, ok := c.kv.Get(wishlistKey); ok {
		var products []models.Product
		if err := json.Unmarshal([]byte(raw), &products); err != nil {
			log.Printf("⚠️ Corrupt wishlist record, starting empty: %v", err)
		} else if products != nil {
			c.wishlist = products
		}
	}
	c.initialized = true
}

// Initialized reports that the hydration attempt has completed, so
// consumers can tell a genuinely empty cart from one not yet loaded.
func (c *Container) Initialized() bool {
	return c.initialized
}

// Cart returns a copy of the current cart lines.
func (c *Container) Cart() []models.CartLine {
	out := make([]models.CartLine, len(c.cart))
	copy(out, c.cart)
	return out
}

// Wishlist returns a copy of the saved products.
func (c *Container) Wishlist() []models.Product {
	out := make([]models.Product, len(c.wishlist))
	copy(out, c.wishlist)
	return out
}

// AddToCart appends a new line with quantity 1, or increments the
// quantity of the existing line for the same product id.
func (c *Container) AddToCart(p models.Product) {
	for i := range c.cart {
		if c.cart[i].ID == p.ID {
			c.cart[i].Quantity++
			c.persistCart()
			return
		}
	}
	c.cart = append(c.cart, models.CartLine{Product: p, Quantity: 1})
	c.persistCart()
}

// RemoveFromCart deletes the line for the product id; no-op if absent.
func (c *Container) RemoveFromCart(productID string) {
	for i := range c.cart {
		if c.cart[i].ID == productID {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
			c.persistCart()
			return
		}
	}
}

// UpdateQuantity sets the line's quantity. Requests below 1 are ignored
// so a line never drops under quantity 1 (removal is a separate call).
func (c *Container) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.cart {
		if c.cart[i].ID == productID {
			c.cart[i].Quantity = quantity
			c.persistCart()
			return
		}
	}
}

func (c *Container) ClearCart() {
	c.cart = []models.CartLine{}
	c.persistCart()
}

// ToggleWishlist removes the product if saved, saves it otherwise.
func (c *Container) ToggleWishlist(p models.Product) {
	for i := range c.wishlist {
		if c.wishlist[i].ID == p.ID {
			c.wishlist = append(c.wishlist[:i], c.wishlist[i+1:]...)
			c.persistWishlist()
			return
		}
	}
	c.wishlist = append(c.wishlist, p)
	c.persistWishlist()
}

func (c *Container) IsInWishlist(productID string) bool {
	for i := range c.wishlist {
		if c.wishlist[i].ID == productID {
			return true
		}
	}
	return false
}

// TotalItems is the sum of quantities across all lines, recomputed on
// every call from the lines themselves.
func (c *Container) TotalItems() int {
	total := 0
	for i := range c.cart {
		total += c.cart[i].Quantity
	}
	return total
}

// TotalPrice sums effective price times quantity across all lines.
func (c *Container) TotalPrice() float64 {
	total := 0.0
	for i := range c.cart {
		total += c.cart[i].LineTotal()
	}
	return total
}

// persistCart serializes the full cart and overwrites its record. A
// write failure loses durability for this write only; the in-memory
// state keeps the mutation.
func (c *Container) persistCart() {
	data, err := json.Marshal(c.cart)
	if err != nil {
		log.Printf("⚠️ Failed to serialize cart: %v", err)
		return
	}
	if err := c.kv.Set(cartKey, string(data)); err != nil {
		log.Printf("⚠️ Failed to persist cart: %v", err)
	}
}

func (c *Container) persistWishlist() {
	data, err := json.Marshal(c.wishlist)
	if err != nil {
		log.Printf("⚠️ Failed to serialize wishlist: %v", err)
		return
	}
	if err := c.kv.Set(wishlistKey, string(data)); err != nil {
		log.Printf("⚠️ Failed to persist wishlist: %v", err)
	}
}
