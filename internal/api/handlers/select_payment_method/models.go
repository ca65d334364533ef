package select_payment_method

// SelectPaymentMethodRequest HTTP request model
type SelectPaymentMethodRequest struct {
	Code string `json:"code"`
}
