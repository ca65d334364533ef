package booking_flow

import (
	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/resolve_options"
)

// Тексты для пользователя
const (
	msgStaleCart           = "Your booking session has expired. Please start the booking again."
	msgUnexpected          = "Something went wrong. Please try again."
	msgOutOfStock          = "This tour is currently not available for booking"
	msgInvalidQuantity     = "Quantity must be at least 1"
	msgUnknownOption       = "Unknown option"
	msgMissingOptions      = "Please fill in the required options"
	msgNoMethodsLoaded     = "Payment methods are not loaded yet"
	msgSelectPaymentMethod = "Please select a payment method"
	msgUnknownMethod       = "The selected payment method is not available"
	msgCheckoutInvalid     = "Please correct the highlighted fields"
	msgCountryUnsupported  = "Please select a country from the list"

	msgCreateCartFailed  = "Could not start your booking"
	msgAddItemFailed     = "Could not add the tour to your cart"
	msgRemoveItemFailed  = "Could not update your cart"
	msgGuestEmailFailed  = "Could not save your email"
	msgBillingFailed     = "Could not save your billing address"
	msgListMethodsFailed = "Could not load payment methods"
	msgSetMethodFailed   = "Could not set the payment method"
	msgTotalsFailed      = "Could not load the order totals"
	msgPlaceOrderFailed  = "Could not place your order"
	msgEnquiryMessage    = "Hello, I would like to enquire about the tour: %s"
)

// Названия переходов для логов и метрик
const (
	opStart               = "Start"
	opSetOption           = "SetOption"
	opSetQuantity         = "SetQuantity"
	opConfirmSelection    = "ConfirmSelection"
	opRequestEnquiry      = "RequestEnquiry"
	opSubmitCheckout      = "SubmitCheckout"
	opLoadPaymentMethods  = "LoadPaymentMethods"
	opSelectPaymentMethod = "SelectPaymentMethod"
	opPlaceOrder          = "PlaceOrder"
	opBack                = "Back"
)

// Результаты переходов для метрик
const (
	outcomeSuccess    = "success"
	outcomeValidation = "validation_error"
	outcomeGateway    = "gateway_error"
	outcomeStaleCart  = "stale_cart"
	outcomeRejected   = "rejected"
)

// Settings параметры сценария бронирования
type Settings struct {
	DateOptionTitle          string           // дата, по которой проверяется остаток мест
	LowAvailabilityThreshold int              // подсказка о малом остатке при remaining <= threshold
	ContactPath              string           // страница запроса для продуктов "только по запросу"
	Countries                []domain.Country // страны магазина; если список пуст, проверяется только формат кода
}

// CheckoutRequest контактные данные покупателя
type CheckoutRequest struct {
	Email   string
	Address domain.BillingAddress
}

// Snapshot текущее состояние сессии для слоя представления
type Snapshot struct {
	SessionID  string
	Step       domain.Step
	Loading    bool
	Error      string
	Terminated bool // корзина утеряна, нужно начать заново
	HasCart    bool

	Product  *domain.Product
	Selected domain.SelectedOptions
	Options  []resolve_options.OptionState
	Quantity int

	Availability        *domain.DateAvailability
	LimitedAvailability bool
	QuantityExceeded    bool
	AvailabilityMessage string

	ItemGrandTotal *domain.Money
	Contact        *CheckoutRequest

	PaymentMethods        []domain.PaymentMethod
	SelectedPaymentMethod string

	Totals *domain.CartTotals
	Order  *domain.PlacedOrder
}
