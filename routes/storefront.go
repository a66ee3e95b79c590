package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/stone-software/pizza-house/controllers/cart"
	productcontroller "github.com/stone-software/pizza-house/controllers/product"
	"github.com/stone-software/pizza-house/store"
	"gorm.io/gorm"
)

// SetupStorefrontRoutes registers the public menu endpoints and the
// guest cart/wishlist endpoints (keyed by guest_id).
func SetupStorefrontRoutes(r *gin.Engine, db *gorm.DB, carts *store.Manager) {
	// ─────────── Menu browsing ───────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))
	r.GET("/categories", productcontroller.GetAllCategories(db))

	// ─────────── Guest cart & wishlist ───────────
	guestGroup := r.Group("/guest")
	{
		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(db, carts))
			cartGroup.POST("", cartControllers.AddToCart(db, carts))
			cartGroup.PUT("", cartControllers.UpdateQuantity(db, carts))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveFromCart(db, carts))
			cartGroup.DELETE("", cartControllers.ClearCart(db, carts))
		}

		wishlistGroup := guestGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", cartControllers.GetWishlist(db, carts))
			wishlistGroup.POST("/toggle", cartControllers.ToggleWishlist(db, carts))
			wishlistGroup.GET("/:product_id", cartControllers.IsInWishlist(db, carts))
		}
	}
}
