package models

import "time"

type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "new"       // Order placed, awaiting processing
	OrderStatusCompleted OrderStatus = "completed" // Delivered and closed
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled by customer or admin
)

type Order struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	CustomerPhone string      `gorm:"not null" json:"customer_phone"`
	Address       string      `json:"address"`
	DeliveryTime  string      `json:"delivery_time"`
	PaymentMethod string      `json:"payment_method"` // "cash" or "terminal"
	Change        string      `json:"change,omitempty"`
	Comment       string      `json:"comment,omitempty"`
	TotalPrice    float64     `json:"total_price"`
	Items         CartLines   `gorm:"type:jsonb" json:"items"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'new'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}
