package magento

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

// optionKinds отображение __typename на вид опции
var optionKinds = map[string]domain.OptionKind{
	"CustomizableDropDownOption": domain.OptionKindDropDown,
	"CustomizableRadioOption":    domain.OptionKindRadio,
	"CustomizableCheckboxOption": domain.OptionKindCheckbox,
	"CustomizableMultipleOption": domain.OptionKindMultiple,
	"CustomizableDateOption":     domain.OptionKindDate,
	"CustomizableFieldOption":    domain.OptionKindField,
	"CustomizableAreaOption":     domain.OptionKindField,
}

// GetProductByURLKey получает продукт с настраиваемыми опциями по url_key
func (c *Client) GetProductByURLKey(ctx context.Context, urlKey string) (*domain.Product, error) {
	var data productsData
	if err := c.do(ctx, "products", productByURLKeyQuery, map[string]interface{}{"urlKey": urlKey}, &data); err != nil {
		return nil, err
	}
	if len(data.Products.Items) == 0 {
		return nil, fmt.Errorf("%w: product url_key=%s", ErrNotFound, urlKey)
	}

	item := data.Products.Items[0]
	product := &domain.Product{
		SKU:    item.SKU,
		Name:   item.Name,
		URLKey: item.URLKey,
		Price: domain.Money{
			Value:    item.PriceRange.MaximumPrice.FinalPrice.Value,
			Currency: item.PriceRange.MaximumPrice.FinalPrice.Currency,
		},
		InStock:     !strings.EqualFold(item.StockStatus, domain.StockStatusOutOfStock),
		EnquiryOnly: bool(item.EnquiryOnly),
		Options:     make([]domain.ProductOption, 0, len(item.Options)),
	}
	if product.URLKey == "" {
		product.URLKey = urlKey
	}

	for _, opt := range item.Options {
		kind, ok := optionKinds[opt.TypeName]
		if !ok {
			c.log.Warn("products: sku=%s skipping option %d with unsupported type %s", item.SKU, opt.OptionID, opt.TypeName)
			continue
		}
		product.Options = append(product.Options, toOption(opt, kind))
	}
	domain.SortOptions(product.Options)

	c.log.Info("products: loaded sku=%s with %d option(s)", product.SKU, len(product.Options))
	return product, nil
}

func toOption(opt optionItem, kind domain.OptionKind) domain.ProductOption {
	out := domain.ProductOption{
		ID:        opt.OptionID,
		Title:     opt.Title,
		Kind:      kind,
		Required:  opt.Required,
		SortOrder: opt.SortOrder,
	}
	if !kind.IsChoice() {
		return out
	}
	out.Values = make([]domain.OptionValue, 0, len(opt.Value))
	for _, v := range opt.Value {
		value := domain.OptionValue{
			ID:        v.OptionTypeID,
			Title:     v.Title,
			Price:     v.Price,
			PriceType: v.PriceType,
			SortOrder: v.SortOrder,
		}
		if v.SKU != nil {
			value.SKU = *v.SKU
		}
		out.Values = append(out.Values, value)
	}
	return out
}

// GetBookingAvailability получает ленту занятости по датам для SKU
func (c *Client) GetBookingAvailability(ctx context.Context, sku string) (*domain.AvailabilityFeed, error) {
	var data bookingCountData
	if err := c.do(ctx, "bookingCountBySku", bookingAvailabilityQuery, map[string]interface{}{"sku": sku}, &data); err != nil {
		return nil, err
	}
	if data.BookingCountBySku == nil {
		return nil, fmt.Errorf("%w: bookingCountBySku: empty result", ErrInvalidResponse)
	}

	src := data.BookingCountBySku
	feed := &domain.AvailabilityFeed{
		SKU:           src.SKU,
		Success:       src.Success,
		Message:       src.Message,
		TotalBookings: src.TotalBookings,
		Entries:       make([]domain.DateCapacity, 0, len(src.Bookings)),
	}
	for _, b := range src.Bookings {
		feed.Entries = append(feed.Entries, domain.DateCapacity{
			Date:      b.Date,
			Committed: b.Count,
			QtyTotal:  b.QtyTotal,
			Allowed:   b.AllowedQty,
			Remaining: b.RemainingQty,
		})
	}
	return feed, nil
}

// ListCountries получает список стран магазина, отсортированный по названию
func (c *Client) ListCountries(ctx context.Context) ([]domain.Country, error) {
	var data countriesData
	if err := c.do(ctx, "countries", countriesQuery, nil, &data); err != nil {
		return nil, err
	}

	countries := make([]domain.Country, 0, len(data.Countries))
	for _, src := range data.Countries {
		code := strings.ToUpper(strings.TrimSpace(src.TwoLetterAbbreviation))
		if code == "" {
			code = strings.ToUpper(strings.TrimSpace(src.ID))
		}
		if code == "" {
			continue
		}
		name := src.FullNameEnglish
		if name == "" {
			name = code
		}
		countries = append(countries, domain.Country{Code: code, Name: name})
	}
	if len(countries) == 0 {
		return nil, fmt.Errorf("%w: countries: empty result", ErrInvalidResponse)
	}

	sort.SliceStable(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	return countries, nil
}
