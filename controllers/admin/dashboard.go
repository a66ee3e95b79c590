package adminController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stone-software/pizza-house/models"
	"gorm.io/gorm"
)

// GetDashboardStats backs the admin dashboard page: catalog counts,
// orders broken down by status, and revenue over completed orders.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productCount, categoryCount, orderCount int64
		var newOrders, completedOrders, cancelledOrders int64
		var revenue float64

		if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
			log.Println("❌ Failed to count products:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}
		if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
			log.Println("❌ Failed to count categories:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
			log.Println("❌ Failed to count orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard stats"})
			return
		}

		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusNew).Count(&newOrders)
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted).Count(&completedOrders)
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusCancelled).Count(&cancelledOrders)

		db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusCompleted).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&revenue)

		c.JSON(http.StatusOK, gin.H{
			"products":   productCount,
			"categories": categoryCount,
			"orders": gin.H{
				"total":     orderCount,
				"new":       newOrders,
				"completed": completedOrders,
				"cancelled": cancelledOrders,
			},
			"revenue": revenue,
		})
	}
}
