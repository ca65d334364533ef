package handlers

import (
	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

// MoneyResponse сумма в валюте
type MoneyResponse struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// OptionValueResponse значение опции выбора
type OptionValueResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	PriceType string  `json:"priceType,omitempty"`
	SortOrder int     `json:"sortOrder"`
}

// OptionResponse опция продукта с видимостью и ответом
type OptionResponse struct {
	ID       int64                 `json:"id"`
	Title    string                `json:"title"`
	Kind     string                `json:"kind"`
	Required bool                  `json:"required"`
	Visible  bool                  `json:"visible"`
	Answered bool                  `json:"answered"`
	Value    string                `json:"value,omitempty"`
	Values   []OptionValueResponse `json:"values,omitempty"`
}

// ProductResponse продукт сессии
type ProductResponse struct {
	SKU         string        `json:"sku"`
	Name        string        `json:"name"`
	URLKey      string        `json:"urlKey"`
	Price       MoneyResponse `json:"price"`
	InStock     bool          `json:"inStock"`
	EnquiryOnly bool          `json:"enquiryOnly"`
}

// AvailabilityResponse остаток мест на выбранную дату
type AvailabilityResponse struct {
	Date               string `json:"date"`
	Remaining          int    `json:"remaining"`
	Allowed            int    `json:"allowed"`
	HasRecordedBooking bool   `json:"hasRecordedBooking"`
	Limited            bool   `json:"limitedAvailability"`
	QuantityExceeded   bool   `json:"quantityExceeded"`
	Message            string `json:"message,omitempty"`
}

// AddressResponse платежный адрес
type AddressResponse struct {
	FirstName   string   `json:"firstname"`
	LastName    string   `json:"lastname"`
	Company     string   `json:"company,omitempty"`
	Street      []string `json:"street"`
	City        string   `json:"city"`
	Region      string   `json:"region,omitempty"`
	Postcode    string   `json:"postcode"`
	CountryCode string   `json:"countryCode"`
	Telephone   string   `json:"telephone"`
}

// ContactResponse принятые контактные данные
type ContactResponse struct {
	Email   string          `json:"email"`
	Address AddressResponse `json:"address"`
}

// PaymentMethodResponse способ оплаты
type PaymentMethodResponse struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// TaxResponse строка налога
type TaxResponse struct {
	Label  string        `json:"label"`
	Amount MoneyResponse `json:"amount"`
}

// TotalsResponse итоги корзины
type TotalsResponse struct {
	Email           string        `json:"email,omitempty"`
	GrandTotal      MoneyResponse `json:"grandTotal"`
	SubtotalInclTax MoneyResponse `json:"subtotalIncludingTax"`
	SubtotalExclTax MoneyResponse `json:"subtotalExcludingTax"`
	Taxes           []TaxResponse `json:"appliedTaxes"`
	Coupons         []string      `json:"appliedCoupons"`
}

// OrderResponse размещенный заказ
type OrderResponse struct {
	OrderNumber string `json:"orderNumber"`
	PaymentLink string `json:"paymentLink,omitempty"`
}

// SnapshotResponse состояние сессии бронирования
type SnapshotResponse struct {
	SessionID  string `json:"sessionId"`
	Step       string `json:"step"`
	Loading    bool   `json:"loading"`
	Error      string `json:"error,omitempty"`
	Terminated bool   `json:"terminated"`
	HasCart    bool   `json:"hasCart"`

	Product  *ProductResponse `json:"product,omitempty"`
	Options  []OptionResponse `json:"options"`
	Quantity int              `json:"quantity"`

	Availability   *AvailabilityResponse `json:"availability,omitempty"`
	ItemGrandTotal *MoneyResponse        `json:"itemGrandTotal,omitempty"`
	Contact        *ContactResponse      `json:"contact,omitempty"`

	PaymentMethods        []PaymentMethodResponse `json:"paymentMethods,omitempty"`
	SelectedPaymentMethod string                  `json:"selectedPaymentMethod,omitempty"`

	Totals *TotalsResponse `json:"totals,omitempty"`
	Order  *OrderResponse  `json:"order,omitempty"`
}

// FromSnapshot конвертирует снимок сессии в HTTP ответ
func FromSnapshot(snap booking_flow.Snapshot) *SnapshotResponse {
	resp := &SnapshotResponse{
		SessionID:             snap.SessionID,
		Step:                  string(snap.Step),
		Loading:               snap.Loading,
		Error:                 snap.Error,
		Terminated:            snap.Terminated,
		HasCart:               snap.HasCart,
		Quantity:              snap.Quantity,
		Options:               make([]OptionResponse, 0, len(snap.Options)),
		SelectedPaymentMethod: snap.SelectedPaymentMethod,
	}

	if p := snap.Product; p != nil {
		resp.Product = &ProductResponse{
			SKU:         p.SKU,
			Name:        p.Name,
			URLKey:      p.URLKey,
			Price:       fromMoney(p.Price),
			InStock:     p.InStock,
			EnquiryOnly: p.EnquiryOnly,
		}
		for _, state := range snap.Options {
			opt, ok := p.Option(state.OptionID)
			if !ok {
				continue
			}
			resp.Options = append(resp.Options, OptionResponse{
				ID:       opt.ID,
				Title:    opt.Title,
				Kind:     string(opt.Kind),
				Required: state.Required,
				Visible:  state.Visible,
				Answered: state.Answered,
				Value:    snap.Selected[opt.ID],
				Values:   fromValues(opt.Values),
			})
		}
	}

	if a := snap.Availability; a != nil {
		resp.Availability = &AvailabilityResponse{
			Date:               a.Date,
			Remaining:          a.Remaining,
			Allowed:            a.Allowed,
			HasRecordedBooking: a.HasRecordedBooking,
			Limited:            snap.LimitedAvailability,
			QuantityExceeded:   snap.QuantityExceeded,
			Message:            snap.AvailabilityMessage,
		}
	}
	if snap.ItemGrandTotal != nil {
		total := fromMoney(*snap.ItemGrandTotal)
		resp.ItemGrandTotal = &total
	}
	if c := snap.Contact; c != nil {
		resp.Contact = &ContactResponse{
			Email: c.Email,
			Address: AddressResponse{
				FirstName:   c.Address.FirstName,
				LastName:    c.Address.LastName,
				Company:     c.Address.Company,
				Street:      c.Address.Street,
				City:        c.Address.City,
				Region:      c.Address.Region,
				Postcode:    c.Address.Postcode,
				CountryCode: c.Address.CountryCode,
				Telephone:   c.Address.Telephone,
			},
		}
	}
	for _, m := range snap.PaymentMethods {
		resp.PaymentMethods = append(resp.PaymentMethods, PaymentMethodResponse{Code: m.Code, Title: m.Title})
	}
	if t := snap.Totals; t != nil {
		totals := &TotalsResponse{
			Email:           t.Email,
			GrandTotal:      fromMoney(t.GrandTotal),
			SubtotalInclTax: fromMoney(t.SubtotalInclTax),
			SubtotalExclTax: fromMoney(t.SubtotalExclTax),
			Taxes:           make([]TaxResponse, 0, len(t.Taxes)),
			Coupons:         append([]string{}, t.Coupons...),
		}
		for _, tax := range t.Taxes {
			totals.Taxes = append(totals.Taxes, TaxResponse{Label: tax.Label, Amount: fromMoney(tax.Amount)})
		}
		resp.Totals = totals
	}
	if o := snap.Order; o != nil {
		resp.Order = &OrderResponse{OrderNumber: o.OrderNumber, PaymentLink: o.PaymentLink}
	}

	return resp
}

func fromMoney(m domain.Money) MoneyResponse {
	return MoneyResponse{Value: m.Value, Currency: m.Currency}
}

func fromValues(values []domain.OptionValue) []OptionValueResponse {
	if len(values) == 0 {
		return nil
	}
	out := make([]OptionValueResponse, 0, len(values))
	for _, v := range values {
		out = append(out, OptionValueResponse{
			ID:        v.ID,
			Title:     v.Title,
			Price:     v.Price,
			PriceType: v.PriceType,
			SortOrder: v.SortOrder,
		})
	}
	return out
}
