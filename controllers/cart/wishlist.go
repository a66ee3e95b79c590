package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stone-software/pizza-house/models"
	"github.com/stone-software/pizza-house/store"
	"gorm.io/gorm"
)

type ToggleWishlistInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

// GET /guest/wishlist
func GetWishlist(db *gorm.DB, carts *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuest(c, db)
		if !ok {
			return
		}

		var state gin.H
		if err := carts.With(guestID, func(container *store.Container) {
			state = gin.H{
				"items":       container.Wishlist(),
				"initialized": container.Initialized(),
			}
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// POST /guest/wishlist/toggle
func ToggleWishlist(db *gorm.DB, carts *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuest(c, db)
		if !ok {
			return
		}

		var input ToggleWishlistInput
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
			container.ToggleWishlist(product)
			state = gin.H{
				"items":       container.Wishlist(),
				"in_wishlist": container.IsInWishlist(product.ID),
			}
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}

// GET /guest/wishlist/:product_id
func IsInWishlist(db *gorm.DB, carts *store.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID, ok := requireGuest(c, db)
		if !ok {
			return
		}

		productID := c.Param("product_id")

		var inWishlist bool
		if err := carts.With(guestID, func(container *store.Container) {
			inWishlist = container.IsInWishlist(productID)
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"in_wishlist": inWishlist})
	}
}
