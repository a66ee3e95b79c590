package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/stone-software/pizza-house/notify"
	"github.com/stone-software/pizza-house/store"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the storefront,
// guest, order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, carts *store.Manager, bot *notify.Telegram) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Storefront + guest cart routes
	SetupStorefrontRoutes(r, db, carts)

	// 3️⃣ Checkout and order feed
	SetupOrderRoutes(r, db, carts, bot)

	// 4️⃣ Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
