package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stone-software/pizza-house/models"
	"gorm.io/gorm"
)

// CreateProduct creates a menu item from a multipart form. The image
// comes either as an uploaded "image" file or an "image_url" field.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		categoryID := c.PostForm("category_id")
		if name == "" || priceStr == "" || categoryID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category_id are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var discountPrice *float64
		if v := c.PostForm("discount_price"); v != "" {
			dp, parseErr := strconv.ParseFloat(v, 64)
			if parseErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount_price"})
				return
			}
			if dp >= price {
				c.JSON(http.StatusBadRequest, gin.H{"error": "discount_price must be less than price"})
				return
			}
			if dp > 0 {
				discountPrice = &dp
			}
		}

		sortOrder := 0
		if v := c.PostForm("sort_order"); v != "" {
			if so, parseErr := strconv.Atoi(v); parseErr == nil {
				sortOrder = so
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_order"})
				return
			}
		}

		var category models.Category
		if err := db.First(&category, "id = ?", categoryID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			return
		}

		imageURL := c.PostForm("image_url")
		if file, fileErr := c.FormFile("image"); fileErr == nil {
			uploaded, upErr := saveProductImage(c, file)
			if upErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": upErr.Error()})
				return
			}
			imageURL = uploaded
		}

		id := c.PostForm("id")
		if id == "" {
			id = uuid.NewString()
		}

		product := models.Product{
			ID:            id,
			Name:          name,
			Description:   c.PostForm("description"),
			Price:         price,
			DiscountPrice: discountPrice,
			Image:         imageURL,
			CategoryID:    categoryID,
			IsPopular:     c.PostForm("is_popular") == "true",
			IsAction:      c.PostForm("is_action") == "true",
			Weight:        c.PostForm("weight"),
			SortOrder:     sortOrder,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

// ToggleProductAction flips the promotional flag on a product.
// PUT /admin/products/:id/action  body: {"is_action": bool}
func ToggleProductAction(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var req struct {
			IsAction bool `json:"is_action"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result := db.Model(&models.Product{}).Where("id = ?", id).Update("is_action", req.IsAction)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}
