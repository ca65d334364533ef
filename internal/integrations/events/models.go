package events

import (
	"time"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

// EventOrderPlaced тип события о размещенном заказе
const EventOrderPlaced = "order.placed"

// OrderPlacedEvent сообщение о размещенном заказе
type OrderPlacedEvent struct {
	Type        string    `json:"type"`
	OrderNumber string    `json:"order_number"`
	SessionID   string    `json:"session_id"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	TourDate    *string   `json:"tour_date,omitempty"`
	GrandTotal  float64   `json:"grand_total"`
	Currency    string    `json:"currency"`
	Email       string    `json:"email"`
	PaymentLink *string   `json:"payment_link,omitempty"`
	PlacedAt    time.Time `json:"placed_at"`
}

// NewOrderPlacedEvent строит событие из записи журнала
func NewOrderPlacedEvent(order *domain.OrderRecord) OrderPlacedEvent {
	return OrderPlacedEvent{
		Type:        EventOrderPlaced,
		OrderNumber: order.OrderNumber,
		SessionID:   order.SessionID,
		SKU:         order.SKU,
		ProductName: order.ProductName,
		Quantity:    order.Quantity,
		TourDate:    order.TourDate,
		GrandTotal:  order.GrandTotal,
		Currency:    order.Currency,
		Email:       order.Email,
		PaymentLink: order.PaymentLink,
		PlacedAt:    order.PlacedAt.UTC(),
	}
}
