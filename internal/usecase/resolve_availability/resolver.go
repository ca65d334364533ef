package resolve_availability

import (
	"strings"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

// Resolver вычисляет остаток мест на дату с заданным значением лимита по умолчанию
type Resolver struct {
	defaultAllowed int
}

// NewResolver создает резолвер; defaultAllowed используется для дат без бронирований
// и при недоступной ленте доступности
func NewResolver(defaultAllowed int) *Resolver {
	if defaultAllowed <= 0 {
		defaultAllowed = domain.DefaultAllowedSeats
	}
	return &Resolver{defaultAllowed: defaultAllowed}
}

// DefaultAllowed возвращает лимит мест по умолчанию
func (r *Resolver) DefaultAllowed() int {
	return r.defaultAllowed
}

// Resolve возвращает остаток мест на дату
func (r *Resolver) Resolve(feed *domain.AvailabilityFeed, date string) domain.DateAvailability {
	return Resolve(feed, date, r.defaultAllowed)
}

// Resolve сопоставляет дату с разреженной лентой доступности.
// Значения записи возвращаются как есть, remaining не пересчитывается.
func Resolve(feed *domain.AvailabilityFeed, date string, defaultAllowed int) domain.DateAvailability {
	day := calendarDay(date)

	// Лента недоступна: не блокируем пользователя
	if feed == nil || !feed.Success {
		return domain.DateAvailability{
			Date:      day,
			Remaining: defaultAllowed,
			Allowed:   defaultAllowed,
		}
	}

	// Лимит общий для всех дат продукта, берем из любой записи
	allowed := defaultAllowed
	if len(feed.Entries) > 0 {
		allowed = feed.Entries[0].Allowed
	}

	for _, entry := range feed.Entries {
		if calendarDay(entry.Date) == day {
			return domain.DateAvailability{
				Date:               day,
				Remaining:          entry.Remaining,
				Allowed:            entry.Allowed,
				HasRecordedBooking: true,
			}
		}
	}

	// На эту дату бронирований не было
	return domain.DateAvailability{
		Date:      day,
		Remaining: allowed,
		Allowed:   allowed,
	}
}

// calendarDay отбрасывает время из "YYYY-MM-DD 00:00:00" и "YYYY-MM-DDT..."
func calendarDay(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > len(domain.DateFormat) {
		if sep := value[len(domain.DateFormat)]; sep == ' ' || sep == 'T' {
			return value[:len(domain.DateFormat)]
		}
	}
	return value
}
