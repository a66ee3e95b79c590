package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stone-software/pizza-house/models"
	"github.com/stone-software/pizza-house/notify"
	"github.com/stone-software/pizza-house/store"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	GuestID       string `json:"guest_id" binding:"required"`
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email"`
	Address       string `json:"address" binding:"required"`
	DeliveryTime  string `json:"delivery_time"`
	PaymentMethod string `json:"payment_method" binding:"required"` // "cash" or "terminal"
	Change        string `json:"change"`
	Comment       string `json:"comment"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusNew):
		return models.OrderStatusNew, nil
	case string(models.OrderStatusCompleted):
		return models.OrderStatusCompleted, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func validPaymentMethod(method string) bool {
	return method == "cash" || method == "terminal"
}

func adminOrdersURL() string {
	if url := os.Getenv("ADMIN_ORDERS_URL"); url != "" {
		return url
	}
	return "https://pizza-house-gamma.vercel.app/admin/orders"
}

// notifyOrder delivers the Telegram message for an already-committed
// order. The order is durable at this point, so every failure here is
// soft: logged, reported as notified=false, never an error.
func notifyOrder(bot *notify.Telegram, details notify.OrderDetails) bool {
	if bot == nil {
		return false
	}
	if err := bot.NotifyNewOrder(details); err != nil {
		log.Println("⚠️ Telegram notification failed:", err)
		return false
	}
	return true
}

// -------- Handlers --------

// PlaceOrderHandler turns the guest's cart into a durable order:
// snapshot the cart, insert the order, notify the admin chat, clear the
// cart. A database failure aborts before notification; a notification
// failure after a successful insert is soft — the order already exists,
// so the shopper still gets a success with the order id.
func PlaceOrderHandler(db *gorm.DB, carts *store.Manager, bot *notify.Telegram) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !validPaymentMethod(req.PaymentMethod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payment_method must be \"cash\" or \"terminal\""})
			return
		}

		var lines []models.CartLine
		var total float64
		if err := carts.With(req.GuestID, func(container *store.Container) {
			lines = container.Cart()
			total = container.TotalPrice()
		}); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown guest session"})
			return
		}
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order := models.Order{
			CustomerName:  req.FirstName + " " + req.LastName,
			CustomerPhone: req.Phone,
			Address:       req.Address,
			DeliveryTime:  req.DeliveryTime,
			PaymentMethod: req.PaymentMethod,
			Change:        req.Change,
			Comment:       req.Comment,
			TotalPrice:    total,
			Items:         models.CartLines(lines),
			Status:        models.OrderStatusNew,
		}

		if err := db.Create(&order).Error; err != nil {
			log.Println("❌ Failed to save order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Помилка бази даних: " + err.Error()})
			return
		}

		notified := notifyOrder(bot, notify.OrderDetails{
			OrderID:        order.ID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Phone:          req.Phone,
			Address:        req.Address,
			DeliveryTime:   req.DeliveryTime,
			PaymentMethod:  req.PaymentMethod,
			Change:         req.Change,
			Lines:          lines,
			Total:          total,
			AdminOrdersURL: adminOrdersURL(),
		})

		if err := carts.With(req.GuestID, func(container *store.Container) {
			container.ClearCart()
		}); err != nil {
			log.Println("⚠️ Failed to clear cart after checkout:", err)
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"order_id": order.ID,
			"notified": notified,
		})
	}
}

// GetAllOrdersHandler lists orders for the admin panel, newest first.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		if err := db.Where("id = ?", orderID).Delete(&models.Order{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
