package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stone-software/pizza-house/models"
	"github.com/stone-software/pizza-house/store"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// Quantity deliberately has no "required" binding: zero must reach the
// container, where it is a no-op rather than a validation error.
type UpdateQuantityInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// requireGuest resolves the guest_id query param into a live session.
func requireGuest(c *gin.Context, db *gorm.DB) (string, bool) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_id is required"})
		return "", false
	}

	var session models.GuestSession
	if err := db.First(&session, "id = ?", guestID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest session not found"})
		return "", false
	}
	if session.ExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Guest session expired"})
		return "", false
	}
	return guestID, true
}

// cartState is the response body for every cart mutation, so clients
// always see totals recomputed from the lines.
func cartState(container *store.Container) gin.H {
	return gin.H{
		"items":       container.Cart(),
		"total_items": container.TotalItems(),
		"total_price": container.TotalPrice(),
		"initialized": container.Initialized(),
	}
}

// GET /guest/cart
func GetCart(db *gorm.DB, carts *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuest(c, db)
		if !ok {
			return
		}

		var state gin.H
		if err := carts.With(guestID, func(container *store.Container) {
			state = cartState(container)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// POST /guest/cart
func AddToCart(db *gorm.DB, carts *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuest(c, db)
		if !ok {
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			status := http.StatusInternalServerError
			errMsg := "Failed to validate product"
			if err == gorm.ErrRecordNotFound {
				status = http.StatusBadRequest
				errMsg = "Product does not exist"
			}
			c.JSON(status, gin.H{"error": errMsg})
			return
		}
		product.Normalize()

		var state gin.H
		if err := carts.With(guestID, func(container *store.Container) {
			container.AddToCart(product)
			state = cartState(container)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// PUT /guest/cart
func UpdateQuantity(db *gorm.DB, carts *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuest(c, db)
		if !ok {
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantities below 1 are a container-level no-op, not an error.
		var state gin.H
		if err := carts.With(guestID, func(container *store.Container) {
			container.UpdateQuantity(input.ProductID, input.Quantity)
			state = cartState(container)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// DELETE /guest/cart/:product_id
func RemoveFromCart(db *gorm.DB, carts *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuest(c, db)
		if !ok {
			return
		}

		productID := c.Param("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		var state gin.H
		if err := carts.With(guestID, func(container *store.Container) {
			container.RemoveFromCart(productID)
			state = cartState(container)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// DELETE /guest/cart
func ClearCart(db *gorm.DB, carts *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuest(c, db)
		if !ok {
			return
		}

		var state gin.H
		if err := carts.With(guestID, func(container *store.Container) {
			container.ClearCart()
			state = cartState(container)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}
