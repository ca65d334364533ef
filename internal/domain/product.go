package domain

// StockStatus values reported by the catalog
const (
	StockStatusInStock    = "IN_STOCK"
	StockStatusOutOfStock = "OUT_OF_STOCK"
)

// Money is an amount in a currency
type Money struct {
	Value    float64
	Currency string
}

// Product represents a bookable tour fetched from the catalog.
// It is immutable for the lifetime of a booking session.
type Product struct {
	SKU         string
	Name        string
	URLKey      string
	Price       Money
	InStock     bool
	EnquiryOnly bool // not purchasable, the flow redirects to a contact request
	Options     []ProductOption
}

// Option returns the option with the given identifier
func (p *Product) Option(id int64) (*ProductOption, bool) {
	for i := range p.Options {
		if p.Options[i].ID == id {
			return &p.Options[i], true
		}
	}
	return nil, false
}

// OptionByTitle returns the first option with the given title
func (p *Product) OptionByTitle(title string) (*ProductOption, bool) {
	for i := range p.Options {
		if p.Options[i].Title == title {
			return &p.Options[i], true
		}
	}
	return nil, false
}

// AvailabilityOption returns the date option that controls seat availability:
// the date option with the given title, otherwise the first date option
func (p *Product) AvailabilityOption(title string) (*ProductOption, bool) {
	var first *ProductOption
	for i := range p.Options {
		opt := &p.Options[i]
		if opt.Kind != OptionKindDate {
			continue
		}
		if opt.Title == title {
			return opt, true
		}
		if first == nil {
			first = opt
		}
	}
	return first, first != nil
}
