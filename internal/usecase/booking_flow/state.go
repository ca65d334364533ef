package booking_flow

import "github.com/m04kA/SMC-TourBooking/internal/domain"

// state значение текущего шага; каждый шаг хранит только свои данные
type state interface {
	step() domain.Step
}

type productState struct{}

type checkoutState struct{}

type paymentState struct {
	methods []domain.PaymentMethod
	loaded  bool
}

// reviewState нельзя создать без итогов корзины
type reviewState struct {
	method domain.PaymentMethod
	totals domain.CartTotals
}

type successState struct {
	order  domain.PlacedOrder
	totals domain.CartTotals
}

func (productState) step() domain.Step  { return domain.StepProduct }
func (checkoutState) step() domain.Step { return domain.StepCheckout }
func (paymentState) step() domain.Step  { return domain.StepPayment }
func (reviewState) step() domain.Step   { return domain.StepReview }
func (successState) step() domain.Step  { return domain.StepSuccess }

// addedItem позиция, уже добавленная в корзину
type addedItem struct {
	fingerprint string
	uid         string
	grandTotal  domain.Money
}

// progress вызовы корзины, успешно выполненные в этой сессии.
// При возврате назад и повторной отправке тех же данных они не повторяются.
type progress struct {
	item    *addedItem
	contact *CheckoutRequest // гостевой email и адрес приняты оба
	methods []domain.PaymentMethod
	payment string // принятый способ оплаты
}
