package main

import (
	"log"
	"os"

	"github.com/stone-software/pizza-house/models"
	"gorm.io/gorm"
)

func price(v float64) *float64 { return &v }

// seedMenu loads the starter menu when SEED_MENU=true and the catalog
// is still empty. Meant for fresh installs and demos.
func seedMenu(db *gorm.DB) {
	if os.Getenv("SEED_MENU") != "true" {
		return
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	categories := []models.Category{
		{ID: "pizza", Name: "Піца", SortOrder: 1},
		{ID: "rolls", Name: "Роли", SortOrder: 2},
		{ID: "sets", Name: "Сети", SortOrder: 3},
		{ID: "drinks", Name: "Напої", SortOrder: 4},
	}
	for _, category := range categories {
		if err := db.FirstOrCreate(&category, models.Category{ID: category.ID}).Error; err != nil {
			log.Printf("❌ Failed to seed category %s: %v", category.ID, err)
			return
		}
	}

	products := []models.Product{
		{
			ID:          "p1",
			Name:        "Гавайська",
			Description: "Ананаси, шинка, моцарела, томатний соус",
			Price:       320,
			Image:       "/images/pizza_hawaii.png",
			CategoryID:  "pizza",
			IsPopular:   true,
			Weight:      "550г",
			SortOrder:   1,
		},
		{
			ID:            "p2",
			Name:          "Супер м’ясо",
			Description:   "Шинка, пепероні, бекон, моцарела, томатний соус",
			Price:         380,
			DiscountPrice: price(340),
			Image:         "/images/pizza_meat.png",
			CategoryID:    "pizza",
			IsPopular:     true,
			IsAction:      true,
			Weight:        "600г",
			SortOrder:     2,
		},
		{
			ID:          "p3",
			Name:        "5 сирів",
			Description: "Моцарела, пармезан, дор блю, чеддер, маасдам",
			Price:       350,
			Image:       "/images/pizza_5_cheese.png",
			CategoryID:  "pizza",
			IsPopular:   true,
			Weight:      "500г",
			SortOrder:   3,
		},
		{
			ID:          "p4",
			Name:        "Маргарита",
			Description: "Томати, моцарела, базилік, томатний соус",
			Price:       280,
			Image:       "/images/pizza_margarita.png",
			CategoryID:  "pizza",
			Weight:      "450г",
			SortOrder:   4,
		},
		{
			ID:          "r1",
			Name:        "Філадельфія класік",
			Description: "Лосось, крем-сир, огірок",
			Price:       260,
			Image:       "/images/rolls_phila.png",
			CategoryID:  "rolls",
			IsPopular:   true,
			Weight:      "280г",
			SortOrder:   1,
		},
		{
			ID:          "d1",
			Name:        "Coca-Cola 0.5л",
			Description: "Охолоджена",
			Price:       45,
			Image:       "/images/drink_cola.png",
			CategoryID:  "drinks",
			Weight:      "0.5л",
			SortOrder:   1,
		},
	}
	for _, product := range products {
		if err := db.Create(&product).Error; err != nil {
			log.Printf("❌ Failed to seed product %s: %v", product.ID, err)
			return
		}
	}

	log.Printf("✅ Seeded %d categories and %d products", len(categories), len(products))
}
