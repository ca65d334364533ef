package resolve_options

import "errors"

var (
	// ErrUnknownValue возвращается, когда ответ не входит в значения опции
	ErrUnknownValue = errors.New("resolve_options: value does not belong to option")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("resolve_options: invalid date, expected YYYY-MM-DD")

	// ErrMultipleValues возвращается при нескольких значениях у опции с одиночным выбором
	ErrMultipleValues = errors.New("resolve_options: option accepts a single value")

	// ErrUnknownKind возвращается для неизвестного типа опции
	ErrUnknownKind = errors.New("resolve_options: unknown option kind")
)
