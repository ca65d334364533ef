package domain

import "time"

// OrderRecord represents a placed order kept in the order journal
type OrderRecord struct {
	ID          int64
	OrderNumber string
	SessionID   string
	SKU         string
	ProductName string
	Quantity    int
	TourDate    *string // YYYY-MM-DD, nil for products without a date option
	GrandTotal  float64
	Currency    string
	Email       string
	PaymentLink *string
	PlacedAt    time.Time
	CreatedAt   time.Time
}
