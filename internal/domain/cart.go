package domain

// CartItemOption is the wire entry for one answered option
type CartItemOption struct {
	OptionID    int64
	ValueString string
	ValueDate   string // set for date options only, "YYYY-MM-DD 00:00:00"
}

// IsDate returns true if the entry carries a date value
func (o CartItemOption) IsDate() bool {
	return o.ValueDate != ""
}

// Value returns the value sent to the backend
func (o CartItemOption) Value() string {
	if o.IsDate() {
		return o.ValueDate
	}
	return o.ValueString
}

// CartItem is the item added to the remote cart
type CartItem struct {
	SKU      string
	Quantity int
	Options  []CartItemOption
}

// BillingAddress is the guest billing address
type BillingAddress struct {
	FirstName   string
	LastName    string
	Company     string
	Street      []string
	City        string
	Region      string
	Postcode    string
	CountryCode string
	Telephone   string
}

// PaymentMethod is a payment method offered for a cart
type PaymentMethod struct {
	Code  string
	Title string
}

// AppliedTax is one tax line of the cart totals
type AppliedTax struct {
	Label  string
	Amount Money
}

// CartTotals is the authoritative pricing of a cart
type CartTotals struct {
	Email           string
	GrandTotal      Money
	SubtotalInclTax Money
	SubtotalExclTax Money
	Taxes           []AppliedTax
	Coupons         []string
}

// PlacedOrder is the result of order placement
type PlacedOrder struct {
	OrderNumber string
	PaymentLink string
}

// AddedItem is the cart line created by adding an item
type AddedItem struct {
	UID        string
	GrandTotal Money
}

// Country is a billing country offered by the store
type Country struct {
	Code string // two-letter ISO code
	Name string
}
