package booking_flow

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

var (
	emailPattern       = regexp.MustCompile(`\S+@\S+\.\S+`)
	countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)
)

// Поля формы оформления
const (
	FieldEmail       = "email"
	FieldFirstName   = "firstname"
	FieldLastName    = "lastname"
	FieldStreet      = "street"
	FieldCity        = "city"
	FieldPostcode    = "postcode"
	FieldCountryCode = "country_code"
	FieldTelephone   = "telephone"
)

// normalizeCheckout обрезает пробелы, убирает пустые строки адреса и подставляет страну по умолчанию
func normalizeCheckout(req CheckoutRequest) CheckoutRequest {
	addr := req.Address
	street := make([]string, 0, len(addr.Street))
	for _, line := range addr.Street {
		if line = strings.TrimSpace(line); line != "" {
			street = append(street, line)
		}
	}

	out := CheckoutRequest{
		Email: strings.TrimSpace(req.Email),
		Address: domain.BillingAddress{
			FirstName:   strings.TrimSpace(addr.FirstName),
			LastName:    strings.TrimSpace(addr.LastName),
			Company:     strings.TrimSpace(addr.Company),
			Street:      street,
			City:        strings.TrimSpace(addr.City),
			Region:      strings.TrimSpace(addr.Region),
			Postcode:    strings.TrimSpace(addr.Postcode),
			CountryCode: strings.ToUpper(strings.TrimSpace(addr.CountryCode)),
			Telephone:   strings.TrimSpace(addr.Telephone),
		},
	}
	if out.Address.CountryCode == "" {
		out.Address.CountryCode = domain.DefaultCountryCode
	}
	return out
}

// validateCheckout проверяет обязательные поля формы оформления.
// Код страны должен входить в countries, если список известен.
func validateCheckout(req CheckoutRequest, countries map[string]struct{}) *ValidationError {
	fields := make(map[string]string)

	switch {
	case req.Email == "":
		fields[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(req.Email):
		fields[FieldEmail] = "Please enter a valid email"
	}

	addr := req.Address
	if addr.FirstName == "" {
		fields[FieldFirstName] = "First name is required"
	}
	if addr.LastName == "" {
		fields[FieldLastName] = "Last name is required"
	}
	if len(addr.Street) == 0 {
		fields[FieldStreet] = "Street address is required"
	}
	if addr.City == "" {
		fields[FieldCity] = "City is required"
	}
	if addr.Postcode == "" {
		fields[FieldPostcode] = "Postal code is required"
	}
	switch {
	case addr.CountryCode == "":
		fields[FieldCountryCode] = "Country is required"
	case !countryCodePattern.MatchString(addr.CountryCode):
		fields[FieldCountryCode] = msgCountryUnsupported
	case len(countries) > 0:
		if _, ok := countries[addr.CountryCode]; !ok {
			fields[FieldCountryCode] = msgCountryUnsupported
		}
	}
	if addr.Telephone == "" {
		fields[FieldTelephone] = "Phone number is required"
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Message: msgCheckoutInvalid, Fields: fields}
}

// countrySet множество кодов стран
func countrySet(countries []domain.Country) map[string]struct{} {
	if len(countries) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(countries))
	for _, c := range countries {
		set[strings.ToUpper(c.Code)] = struct{}{}
	}
	return set
}

// missingOptionsError ошибка о незаполненных обязательных опциях
func missingOptionsError(titles []string) *ValidationError {
	return &ValidationError{
		Message: fmt.Sprintf("%s: %s", msgMissingOptions, strings.Join(titles, ", ")),
		Missing: titles,
	}
}

// fingerprint сравнивает позиции корзины при повторной отправке
func fingerprint(item domain.CartItem) string {
	entries := make([]string, 0, len(item.Options))
	for _, opt := range item.Options {
		kind := "s"
		if opt.IsDate() {
			kind = "d"
		}
		entries = append(entries, fmt.Sprintf("%d:%s:%s", opt.OptionID, kind, opt.Value()))
	}
	sort.Strings(entries)
	return fmt.Sprintf("%s|%d|%s", item.SKU, item.Quantity, strings.Join(entries, ";"))
}

func sameContact(a, b *CheckoutRequest) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Email != b.Email || len(a.Address.Street) != len(b.Address.Street) {
		return false
	}
	for i := range a.Address.Street {
		if a.Address.Street[i] != b.Address.Street[i] {
			return false
		}
	}
	x, y := a.Address, b.Address
	return x.FirstName == y.FirstName && x.LastName == y.LastName && x.Company == y.Company &&
		x.City == y.City && x.Region == y.Region && x.Postcode == y.Postcode &&
		x.CountryCode == y.CountryCode && x.Telephone == y.Telephone
}
