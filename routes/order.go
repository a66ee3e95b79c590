package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/stone-software/pizza-house/controllers/order"
	"github.com/stone-software/pizza-house/notify"
	"github.com/stone-software/pizza-house/store"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, carts *store.Manager, bot *notify.Telegram) {
	orders := r.Group("/orders")
	{
		// Checkout: cart snapshot -> order row -> Telegram notification
		orders.POST("/place", orderControllers.PlaceOrderHandler(db, carts, bot))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
