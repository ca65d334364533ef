package magento

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// graphqlRequest тело запроса к GraphQL эндпоинту
type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// graphqlResponse общий конверт ответа
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type money struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// flexBool принимает true/false, 0/1 и null
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "":
		*b = false
		return nil
	case "true":
		*b = true
		return nil
	case "false":
		*b = false
		return nil
	}
	raw := string(data)
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = unquoted
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		parsed, perr := strconv.ParseBool(raw)
		if perr != nil {
			return perr
		}
		*b = flexBool(parsed)
		return nil
	}
	*b = n != 0
	return nil
}

// Каталог

type productsData struct {
	Products struct {
		Items []productItem `json:"items"`
	} `json:"products"`
}

type productItem struct {
	SKU         string   `json:"sku"`
	Name        string   `json:"name"`
	URLKey      string   `json:"url_key"`
	StockStatus string   `json:"stock_status"`
	EnquiryOnly flexBool `json:"enquiry_only"`
	PriceRange  struct {
		MaximumPrice struct {
			FinalPrice money `json:"final_price"`
		} `json:"maximum_price"`
	} `json:"price_range"`
	Options []optionItem `json:"options"`
}

type optionItem struct {
	TypeName  string            `json:"__typename"`
	OptionID  int64             `json:"option_id"`
	Title     string            `json:"title"`
	Required  bool              `json:"required"`
	SortOrder int               `json:"sort_order"`
	Value     []optionValueItem `json:"value"`
}

type optionValueItem struct {
	OptionTypeID int64   `json:"option_type_id"`
	Title        string  `json:"title"`
	Price        float64 `json:"price"`
	PriceType    string  `json:"price_type"`
	SKU          *string `json:"sku"`
	SortOrder    int     `json:"sort_order"`
}

type bookingCountData struct {
	BookingCountBySku *struct {
		Bookings []struct {
			AllowedQty   int    `json:"allowed_qty"`
			Count        int    `json:"count"`
			Date         string `json:"date"`
			QtyTotal     int    `json:"qty_total"`
			RemainingQty int    `json:"remaining_qty"`
		} `json:"bookings"`
		Message       string `json:"message"`
		SKU           string `json:"sku"`
		Success       bool   `json:"success"`
		TotalBookings int    `json:"total_bookings"`
	} `json:"bookingCountBySku"`
}

type countriesData struct {
	Countries []struct {
		ID                    string `json:"id"`
		TwoLetterAbbreviation string `json:"two_letter_abbreviation"`
		FullNameEnglish       string `json:"full_name_english"`
	} `json:"countries"`
}

// Корзина

type createCartData struct {
	CreateEmptyCart string `json:"createEmptyCart"`
}

type cartItemInput struct {
	Data struct {
		Quantity int    `json:"quantity"`
		SKU      string `json:"sku"`
	} `json:"data"`
	CustomizableOptions []customizableOptionInput `json:"customizable_options,omitempty"`
}

type customizableOptionInput struct {
	ID          int64  `json:"id"`
	ValueString string `json:"value_string"`
}

type cartPrices struct {
	GrandTotal money `json:"grand_total"`
}

type addItemData struct {
	AddVirtualProductsToCart struct {
		Cart struct {
			Items []struct {
				UID     string `json:"uid"`
				Product struct {
					Name string `json:"name"`
					SKU  string `json:"sku"`
				} `json:"product"`
				Quantity float64 `json:"quantity"`
			} `json:"items"`
			Prices cartPrices `json:"prices"`
		} `json:"cart"`
	} `json:"addVirtualProductsToCart"`
}

type removeItemData struct {
	RemoveItemFromCart struct {
		Cart struct {
			ID string `json:"id"`
		} `json:"cart"`
	} `json:"removeItemFromCart"`
}

type guestEmailData struct {
	SetGuestEmailOnCart struct {
		Cart struct {
			Email string `json:"email"`
		} `json:"cart"`
	} `json:"setGuestEmailOnCart"`
}

// addressInput CartAddressInput
type addressInput struct {
	FirstName   string   `json:"firstname"`
	LastName    string   `json:"lastname"`
	Company     string   `json:"company,omitempty"`
	Street      []string `json:"street"`
	City        string   `json:"city"`
	Region      string   `json:"region,omitempty"`
	Postcode    string   `json:"postcode"`
	CountryCode string   `json:"country_code"`
	Telephone   string   `json:"telephone"`
}

type codeLabel struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type billingAddressData struct {
	SetBillingAddressOnCart struct {
		Cart struct {
			BillingAddress *struct {
				FirstName string     `json:"firstname"`
				LastName  string     `json:"lastname"`
				Company   *string    `json:"company"`
				Street    []string   `json:"street"`
				City      string     `json:"city"`
				Region    *codeLabel `json:"region"`
				Postcode  string     `json:"postcode"`
				Telephone string     `json:"telephone"`
				Country   codeLabel  `json:"country"`
			} `json:"billing_address"`
		} `json:"cart"`
	} `json:"setBillingAddressOnCart"`
}

type paymentMethodItem struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

type paymentMethodsData struct {
	Cart *struct {
		AvailablePaymentMethods []paymentMethodItem `json:"available_payment_methods"`
	} `json:"cart"`
}

type setPaymentMethodData struct {
	SetPaymentMethodOnCart struct {
		Cart struct {
			SelectedPaymentMethod paymentMethodItem `json:"selected_payment_method"`
		} `json:"cart"`
	} `json:"setPaymentMethodOnCart"`
}

type cartTotalsData struct {
	Cart *struct {
		Email  *string `json:"email"`
		Prices struct {
			GrandTotal           money `json:"grand_total"`
			SubtotalIncludingTax money `json:"subtotal_including_tax"`
			SubtotalExcludingTax money `json:"subtotal_excluding_tax"`
			AppliedTaxes         []struct {
				Label  string `json:"label"`
				Amount money  `json:"amount"`
			} `json:"applied_taxes"`
		} `json:"prices"`
		AppliedCoupons []struct {
			Code string `json:"code"`
		} `json:"applied_coupons"`
	} `json:"cart"`
}

type placeOrderData struct {
	PlaceOrder *struct {
		Order struct {
			OrderNumber string `json:"order_number"`
		} `json:"order"`
		PaymentLink *string `json:"paymentlink"`
	} `json:"placeOrder"`
}
