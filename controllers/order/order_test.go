package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stone-software/pizza-house/models"
	"github.com/stone-software/pizza-house/notify"
	"github.com/stretchr/testify/require"
)

func TestMapOrderStatus(t *testing.T) {
	cases := []struct {
		input string
		want  models.OrderStatus
		ok    bool
	}{
		{input: "new", want: models.OrderStatusNew, ok: true},
		{input: "NEW", want: models.OrderStatusNew, ok: true},
		{input: "completed", want: models.OrderStatusCompleted, ok: true},
		{input: "cancelled", want: models.OrderStatusCancelled, ok: true},
		{input: "shipped", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range cases {
		status, err := mapOrderStatus(tc.input)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.input)
			require.Equal(t, tc.want, status)
		} else {
			require.Error(t, err, "input %q", tc.input)
		}
	}
}

func sampleDetails() notify.OrderDetails {
	return notify.OrderDetails{
		OrderID:       12,
		FirstName:     "Іван",
		LastName:      "Петренко",
		Phone:         "+380501234567",
		Address:       "вул. Шевченка 10",
		PaymentMethod: "cash",
		Lines:         []models.CartLine{{Product: models.Product{ID: "p1", Name: "Гавайська", Price: 320}, Quantity: 2}},
		Total:         640,
	}
}

// Delivery failures after the order insert are soft: notifyOrder only
// reports notified=false, the checkout still succeeds.
func TestNotifyOrderSoftFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	bot := &notify.Telegram{Token: "token", ChatID: "42", APIBase: server.URL}
	require.False(t, notifyOrder(bot, sampleDetails()))
}

func TestNotifyOrderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	bot := &notify.Telegram{Token: "token", ChatID: "42", APIBase: server.URL}
	require.True(t, notifyOrder(bot, sampleDetails()))
}

func TestNotifyOrderNoBotConfigured(t *testing.T) {
	require.False(t, notifyOrder(nil, sampleDetails()))
}

func TestValidPaymentMethod(t *testing.T) {
	require.True(t, validPaymentMethod("cash"))
	require.True(t, validPaymentMethod("terminal"))
	require.False(t, validPaymentMethod("card"))
	require.False(t, validPaymentMethod(""))
}
