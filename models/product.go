package models

import "time"

type Product struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	Image         string    `json:"image"`
	CategoryID    string    `gorm:"index" json:"category_id"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"categories,omitempty"`
	IsPopular     bool      `json:"is_popular"`
	IsAction      bool      `json:"is_action"`
	Weight        string    `json:"weight,omitempty"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EffectivePrice is the price a shopper actually pays: the discounted
// price when one is set, the base price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// Normalize drops a discount price that cannot be honored: zero/negative
// values and discounts that are not below the base price are treated as
// absent rather than propagated further.
func (p *Product) Normalize() {
	if p.DiscountPrice != nil && (*p.DiscountPrice <= 0 || *p.DiscountPrice >= p.Price) {
		p.DiscountPrice = nil
	}
}
