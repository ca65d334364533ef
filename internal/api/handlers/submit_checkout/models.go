package submit_checkout

import (
	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/booking_flow"
)

// AddressRequest платежный адрес
type AddressRequest struct {
	FirstName   string   `json:"firstname"`
	LastName    string   `json:"lastname"`
	Company     string   `json:"company,omitempty"`
	Street      []string `json:"street"`
	City        string   `json:"city"`
	Region      string   `json:"region,omitempty"`
	Postcode    string   `json:"postcode"`
	CountryCode string   `json:"countryCode,omitempty"`
	Telephone   string   `json:"telephone"`
}

// SubmitCheckoutRequest HTTP request model
type SubmitCheckoutRequest struct {
	Email   string         `json:"email"`
	Address AddressRequest `json:"address"`
}

// ToCheckoutRequest конвертирует HTTP запрос в модель сценария бронирования
func (r *SubmitCheckoutRequest) ToCheckoutRequest() booking_flow.CheckoutRequest {
	return booking_flow.CheckoutRequest{
		Email: r.Email,
		Address: domain.BillingAddress{
			FirstName:   r.Address.FirstName,
			LastName:    r.Address.LastName,
			Company:     r.Address.Company,
			Street:      r.Address.Street,
			City:        r.Address.City,
			Region:      r.Address.Region,
			Postcode:    r.Address.Postcode,
			CountryCode: r.Address.CountryCode,
			Telephone:   r.Address.Telephone,
		},
	}
}
