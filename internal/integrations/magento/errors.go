package magento

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport возвращается, когда запрос не удалось выполнить (сеть, таймаут)
	ErrTransport = errors.New("magento client: transport error")

	// ErrInvalidResponse возвращается при некорректном ответе от GraphQL эндпоинта
	ErrInvalidResponse = errors.New("magento client: invalid response")

	// ErrBackend возвращается, когда ответ содержит errors[]
	ErrBackend = errors.New("magento client: backend error")

	// ErrNotFound возвращается, когда продукт или корзина не найдены
	ErrNotFound = errors.New("magento client: not found")
)

// BackendError первая ошибка из errors[] ответа GraphQL
type BackendError struct {
	Operation string
	Message   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrBackend.Error(), e.Operation, e.Message)
}

func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

// UserMessage текст ошибки бэкенда без служебного префикса
func (e *BackendError) UserMessage() string {
	return e.Message
}
