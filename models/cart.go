package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// CartLine is a product snapshot plus the quantity the shopper wants.
// At most one line exists per product id; adding the same product again
// increments the quantity instead of appending a duplicate.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the effective price times quantity.
func (l CartLine) LineTotal() float64 {
	return l.EffectivePrice() * float64(l.Quantity)
}

// CartLines is stored on an order as a jsonb column: the cart contents
// are copied into the order at checkout and have no ongoing link to the
// shopper's cart afterwards.
type CartLines []CartLine

func (cl CartLines) Value() (driver.Value, error) {
	if cl == nil {
		cl = CartLines{}
	}
	return json.Marshal(cl)
}

func (cl *CartLines) Scan(value interface{}) error {
	if value == nil {
		*cl = CartLines{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for CartLines")
	}
	return json.Unmarshal(raw, cl)
}
