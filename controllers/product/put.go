package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stone-software/pizza-house/models"
	"gorm.io/gorm"
)

// UpdateProduct updates an existing product by ID.
// Accepts the same fields as CreateProduct and an optional "image" file.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		parseFloat := func(val string) *float64 {
			if val == "" {
				return nil
			}
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				return &f
			}
			return nil
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := parseFloat(c.PostForm("price")); v != nil {
			product.Price = *v
		}
		if v := c.PostForm("discount_price"); v != "" {
			if v == "none" {
				product.DiscountPrice = nil
			} else if dp := parseFloat(v); dp != nil {
				if *dp >= product.Price {
					c.JSON(http.StatusBadRequest, gin.H{"error": "discount_price must be less than price"})
					return
				}
				product.DiscountPrice = dp
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount_price"})
				return
			}
		}
		if v := c.PostForm("category_id"); v != "" {
			var category models.Category
			if err := db.First(&category, "id = ?", v).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			product.CategoryID = v
		}
		if v := c.PostForm("is_popular"); v != "" {
			product.IsPopular = v == "true"
		}
		if v := c.PostForm("is_action"); v != "" {
			product.IsAction = v == "true"
		}
		if v := c.PostForm("weight"); v != "" {
			product.Weight = v
		}
		if v := c.PostForm("sort_order"); v != "" {
			if so, err := strconv.Atoi(v); err == nil {
				product.SortOrder = so
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort_order"})
				return
			}
		}

		// Normalize a discount that a price change made invalid.
		product.Normalize()

		if file, err := c.FormFile("image"); err == nil {
			removeProductImage(product.Image)

			uploaded, upErr := saveProductImage(c, file)
			if upErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": upErr.Error()})
				return
			}
			product.Image = uploaded
		} else if v := c.PostForm("image_url"); v != "" {
			product.Image = v
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
