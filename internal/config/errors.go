package config

import "errors"

var (
	// ErrLoad возвращается, когда конфигурацию не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalidConfig возвращается при некорректных значениях
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
