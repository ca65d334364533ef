package booking_flow

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/internal/usecase/resolve_options"
)

// CartGateway интерфейс удаленной корзины магазина
type CartGateway interface {
	CreateCart(ctx context.Context) (string, error)
	AddItem(ctx context.Context, cartID string, item domain.CartItem) (domain.AddedItem, error)
	RemoveItem(ctx context.Context, cartID, itemUID string) error
	SetGuestEmail(ctx context.Context, cartID, email string) (string, error)
	SetBillingAddress(ctx context.Context, cartID string, address domain.BillingAddress) (domain.BillingAddress, error)
	ListPaymentMethods(ctx context.Context, cartID string) ([]domain.PaymentMethod, error)
	SetPaymentMethod(ctx context.Context, cartID, code string) (domain.PaymentMethod, error)
	GetTotals(ctx context.Context, cartID string) (domain.CartTotals, error)
	PlaceOrder(ctx context.Context, cartID string) (domain.PlacedOrder, error)
}

// CartIDStore хранилище идентификатора активной корзины посетителя
type CartIDStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, cartID string) error
	Clear(ctx context.Context) error
}

// AvailabilityResolver интерфейс расчета остатка мест на дату
type AvailabilityResolver interface {
	Resolve(feed *domain.AvailabilityFeed, date string) domain.DateAvailability
}

// OptionResolver интерфейс разрешения зависимостей между опциями
type OptionResolver interface {
	Resolve(options []domain.ProductOption, selected domain.SelectedOptions) resolve_options.Result
}

// MetricsRecorder интерфейс записи метрик сценария
type MetricsRecorder interface {
	ObserveGatewayCall(operation string, started time.Time, err error)
	Transition(transition, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// userMessager ошибка бэкенда с текстом, пригодным для показа пользователю
type userMessager interface {
	UserMessage() string
}
