package orders

import "errors"

var (
	// ErrDuplicateOrder возвращается, когда заказ с таким номером уже записан
	ErrDuplicateOrder = errors.New("orders.repository: order already recorded")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("orders.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("orders.repository: failed to execute query")
)
