package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEffectivePrice(t *testing.T) {
	p := Product{ID: "p1", Price: 320}
	require.Equal(t, 320.0, p.EffectivePrice())

	discount := 280.0
	p.DiscountPrice = &discount
	require.Equal(t, 280.0, p.EffectivePrice())
}

func TestNormalizeDropsInvalidDiscount(t *testing.T) {
	cases := []struct {
		name     string
		discount float64
		kept     bool
	}{
		{name: "valid discount", discount: 280, kept: true},
		{name: "equal to price", discount: 320, kept: false},
		{name: "above price", discount: 400, kept: false},
		{name: "zero", discount: 0, kept: false},
		{name: "negative", discount: -5, kept: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			discount := tc.discount
			p := Product{ID: "p1", Price: 320, DiscountPrice: &discount}
			p.Normalize()
			if tc.kept {
				require.NotNil(t, p.DiscountPrice)
				require.Equal(t, tc.discount, *p.DiscountPrice)
			} else {
				require.Nil(t, p.DiscountPrice)
			}
		})
	}
}

func TestCartLineTotal(t *testing.T) {
	discount := 340.0
	line := CartLine{
		Product:  Product{ID: "p2", Price: 380, DiscountPrice: &discount},
		Quantity: 3,
	}
	require.Equal(t, 1020.0, line.LineTotal())
}
