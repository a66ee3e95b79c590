package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stone-software/pizza-house/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ImportProductsFromExcel bulk creates/updates menu items from an .xlsx
// upload. Column layout matches ExportProductsToExcel. Rows with a known
// ID update the existing product; rows without one create a new product.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			discountStr := get(4)
			image := get(5)
			categoryID := get(6)
			isPopular := get(7) == "true"
			isAction := get(8) == "true"
			weight := get(9)
			sortOrder, _ := strconv.Atoi(get(10))

			if name == "" || categoryID == "" || priceErr != nil || price <= 0 {
				skippedCount++
				continue
			}

			var discountPrice *float64
			if discountStr != "" {
				if dp, dpErr := strconv.ParseFloat(discountStr, 64); dpErr == nil && dp > 0 && dp < price {
					discountPrice = &dp
				}
			}

			if id != "" {
				var existing models.Product
				if err := db.First(&existing, "id = ?", id).Error; err == nil {
					existing.Name = name
					existing.Description = description
					existing.Price = price
					existing.DiscountPrice = discountPrice
					existing.Image = image
					existing.CategoryID = categoryID
					existing.IsPopular = isPopular
					existing.IsAction = isAction
					existing.Weight = weight
					existing.SortOrder = sortOrder

					if err := db.Save(&existing).Error; err == nil {
						updatedCount++
					} else {
						skippedCount++
					}
					continue
				}
			} else {
				id = uuid.NewString()
			}

			product := models.Product{
				ID:            id,
				Name:          name,
				Description:   description,
				Price:         price,
				DiscountPrice: discountPrice,
				Image:         image,
				CategoryID:    categoryID,
				IsPopular:     isPopular,
				IsAction:      isAction,
				Weight:        weight,
				SortOrder:     sortOrder,
			}

			if err := db.Create(&product).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
