package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stone-software/pizza-house/models"
	"github.com/stretchr/testify/require"
)

func sampleDetails() OrderDetails {
	discount := 340.0
	return OrderDetails{
		OrderID:       7,
		FirstName:     "Іван",
		LastName:      "Петренко",
		Phone:         "+380501234567",
		Address:       "вул. Шевченка 10",
		DeliveryTime:  "18:30",
		PaymentMethod: "cash",
		Change:        "1000",
		Lines: []models.CartLine{
			{Product: models.Product{ID: "p1", Name: "Гавайська", Price: 320}, Quantity: 2},
			{Product: models.Product{ID: "p2", Name: "Супер м’ясо", Price: 380, DiscountPrice: &discount}, Quantity: 1},
		},
		Total:          980,
		AdminOrdersURL: "https://example.com/admin/orders",
	}
}

func TestOrderMessageFormat(t *testing.T) {
	text := sampleDetails().Message()

	require.Contains(t, text, "НОВЕ ЗАМОВЛЕННЯ №7")
	require.Contains(t, text, "<b>Імʼя:</b> Іван Петренко")
	require.Contains(t, text, "<b>Телефон:</b> +380501234567")
	require.Contains(t, text, "Гавайська x2")
	require.Contains(t, text, "Супер м’ясо x1")
	require.Contains(t, text, "Разом: 980 грн")
	require.Contains(t, text, "Готівка, решта з 1000 грн")
	require.Contains(t, text, `href="https://example.com/admin/orders"`)
}

func TestOrderMessageTerminalNoChange(t *testing.T) {
	details := sampleDetails()
	details.PaymentMethod = "terminal"
	details.Change = ""

	text := details.Message()
	require.Contains(t, text, "<b>Оплата:</b> Термінал")
	require.NotContains(t, text, "решта")
}

func TestNotifyNewOrderSendsRequest(t *testing.T) {
	var gotPath string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	bot := &Telegram{Token: "test-token", ChatID: "42", APIBase: server.URL}
	require.NoError(t, bot.NotifyNewOrder(sampleDetails()))

	require.Equal(t, "/bottest-token/sendMessage", gotPath)
	require.Equal(t, "42", gotBody["chat_id"])
	require.Equal(t, "HTML", gotBody["parse_mode"])
	require.True(t, strings.Contains(gotBody["text"], "НОВЕ ЗАМОВЛЕННЯ"))
}

func TestNotifyNewOrderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"ok":false}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	bot := &Telegram{Token: "test-token", ChatID: "42", APIBase: server.URL}
	err := bot.NotifyNewOrder(sampleDetails())
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestNotifyNewOrderNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	bot := &Telegram{Token: "test-token", ChatID: "42", APIBase: server.URL}
	require.Error(t, bot.NotifyNewOrder(sampleDetails()))
}
