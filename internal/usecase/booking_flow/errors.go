package booking_flow

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation возвращается, когда локальная проверка не пройдена (запрос в бэкенд не отправлялся)
	ErrValidation = errors.New("booking_flow: validation failed")

	// ErrGateway возвращается при ошибке вызова корзины, переход можно повторить
	ErrGateway = errors.New("booking_flow: cart gateway call failed")

	// ErrStaleCart возвращается, когда идентификатор корзины утерян; сессию нужно начать заново
	ErrStaleCart = errors.New("booking_flow: cart is missing, restart the booking")

	// ErrBusy возвращается, когда предыдущий вызов еще выполняется
	ErrBusy = errors.New("booking_flow: another operation is in progress")

	// ErrInvalidTransition возвращается, когда операция недоступна на текущем шаге
	ErrInvalidTransition = errors.New("booking_flow: operation is not allowed at the current step")

	// ErrSessionComplete возвращается после размещения заказа
	ErrSessionComplete = errors.New("booking_flow: order already placed")

	// ErrEnquiryOnly возвращается при попытке оформить продукт, доступный только по запросу
	ErrEnquiryOnly = errors.New("booking_flow: product is available on enquiry only")

	// ErrNotEnquiryOnly возвращается при запросе на продукт, который можно оформить напрямую
	ErrNotEnquiryOnly = errors.New("booking_flow: product can be booked directly")

	// ErrAlreadyStarted возвращается при повторном создании корзины
	ErrAlreadyStarted = errors.New("booking_flow: session already started")
)

// ValidationError локальная ошибка проверки с текстом для пользователя
type ValidationError struct {
	Message string
	Fields  map[string]string // поле формы -> сообщение
	Missing []string          // заголовки незаполненных опций
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// GatewayError ошибка вызова корзины
type GatewayError struct {
	Operation string
	Message   string // текст для пользователя
	Err       error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrGateway.Error(), e.Operation, e.Err)
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func newGatewayError(operation, message string, err error) *GatewayError {
	text := message
	var um userMessager
	if errors.As(err, &um) && um.UserMessage() != "" {
		text = fmt.Sprintf("%s: %s", message, um.UserMessage())
	}
	return &GatewayError{
		Operation: operation,
		Message:   text + ". Please try again.",
		Err:       err,
	}
}

// userText текст ошибки для снимка сессии
func userText(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Message
	}
	if errors.Is(err, ErrStaleCart) {
		return msgStaleCart
	}
	return msgUnexpected
}
