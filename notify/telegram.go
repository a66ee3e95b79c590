package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/stone-software/pizza-house/models"
)

const defaultAPIBase = "https://api.telegram.org"

// Telegram sends order notifications to the restaurant's Telegram chat
// through the bot sendMessage endpoint. A single POST per order, no
// retries: delivery failures are the caller's soft-error to log.
type Telegram struct {
	Token   string
	ChatID  string
	APIBase string
	Client  *http.Client
}

// NewTelegramFromEnv reads TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID.
func NewTelegramFromEnv() (*Telegram, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatID == "" {
		return nil, fmt.Errorf("telegram configuration missing")
	}
	return &Telegram{Token: token, ChatID: chatID}, nil
}

// OrderDetails carries everything the notification text needs.
type OrderDetails struct {
	OrderID        uint
	FirstName      string
	LastName       string
	Phone          string
	Address        string
	DeliveryTime   string
	PaymentMethod  string // "cash" or "terminal"
	Change         string
	Lines          []models.CartLine
	Total          float64
	AdminOrdersURL string
}

// Message renders the HTML notification text sent to the admin chat.
func (d OrderDetails) Message() string {
	items := make([]string, 0, len(d.Lines))
	for _, line := range d.Lines {
		items = append(items, fmt.Sprintf("%s x%d", line.Name, line.Quantity))
	}

	payment := "Термінал"
	if d.PaymentMethod == "cash" {
		payment = "Готівка"
	}
	if d.Change != "" {
		payment += fmt.Sprintf(", решта з %s грн", d.Change)
	}

	total := strconv.FormatFloat(d.Total, 'f', -1, 64)

	return fmt.Sprintf(
		"🛒 <b>НОВЕ ЗАМОВЛЕННЯ №%d</b>\n\n"+
			"<b>Імʼя:</b> %s %s\n"+
			"<b>Телефон:</b> %s\n"+
			"<b>Адреса:</b> %s\n"+
			"<b>Час доставки:</b> %s\n\n"+
			"<b>Склад:</b>\n%s\n\n"+
			"<b>Сума:</b> %s грн\n"+
			"💰 <b>Разом: %s грн</b>\n"+
			"💳 <b>Оплата:</b> %s\n\n"+
			"🔗 <a href=\"%s\">Керувати замовленням в адмін-панелі</a>",
		d.OrderID,
		d.FirstName, d.LastName,
		d.Phone,
		d.Address,
		d.DeliveryTime,
		strings.Join(items, "\n"),
		total,
		total,
		payment,
		d.AdminOrdersURL,
	)
}

// NotifyNewOrder posts the order message. Any non-2xx status or network
// failure is returned as an error.
func (t *Telegram) NotifyNewOrder(d OrderDetails) error {
	return t.send(d.Message())
}

func (t *Telegram) send(text string) error {
	base := t.APIBase
	if base == "" {
		base = defaultAPIBase
	}

	payload := map[string]string{
		"chat_id":    t.ChatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", base, t.Token)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Telegram: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram responded %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
