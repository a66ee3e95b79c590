package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stone-software/pizza-house/models"
	"gorm.io/gorm"
)

// GetProducts lists the menu, ordered by sort_order. Optional filters:
// category_id, popular=true, action=true, search (name/description),
// limit.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		categoryID := c.Query("category_id")
		popular := c.Query("popular")
		action := c.Query("action")
		limitStr := c.Query("limit")

		query := db.Model(&models.Product{}).Preload("Category")

		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ?", likePattern, likePattern)
		}
		if categoryID != "" {
			query = query.Where("category_id = ?", categoryID)
		}
		if popular == "true" {
			query = query.Where("is_popular = ?", true)
		}
		if action == "true" {
			query = query.Where("is_action = ?", true)
		}
		if limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil || limit < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			query = query.Limit(limit)
		}

		var products []models.Product
		if err := query.Order("sort_order asc").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
