package resolve_availability

import (
	"fmt"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

// ExceededMessage текст ошибки, когда количество превышает остаток мест
func ExceededMessage(info domain.DateAvailability) string {
	return fmt.Sprintf("Only %d seat(s) available! Please reduce quantity to %d or less",
		info.Remaining, info.Remaining)
}

// LimitedMessage подсказка о малом остатке мест
func LimitedMessage(info domain.DateAvailability) string {
	return fmt.Sprintf("Only %d of %d seat(s) left for %s", info.Remaining, info.Allowed, info.Date)
}

// SoldOutMessage текст ошибки, когда мест на дату нет
func SoldOutMessage(info domain.DateAvailability) string {
	return fmt.Sprintf("No seats available on %s, please choose another date", info.Date)
}
