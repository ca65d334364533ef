package domain

// Step represents the current step of the booking flow
type Step string

const (
	StepProduct  Step = "product"
	StepCheckout Step = "checkout"
	StepPayment  Step = "payment"
	StepReview   Step = "review"
	StepSuccess  Step = "success"
)

// Previous returns the step reached by navigating back
func (s Step) Previous() (Step, bool) {
	switch s {
	case StepCheckout:
		return StepProduct, true
	case StepPayment:
		return StepCheckout, true
	case StepReview:
		return StepPayment, true
	}
	return s, false
}

// IsTerminal returns true once the order is placed
func (s Step) IsTerminal() bool {
	return s == StepSuccess
}
