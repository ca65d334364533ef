package orders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
	"github.com/m04kA/SMC-TourBooking/pkg/psqlbuilder"
)

// Repository журнал размещенных заказов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает размещенный заказ.
// Повторная запись того же номера заказа возвращает ErrDuplicateOrder.
func (r *Repository) Create(ctx context.Context, order *domain.OrderRecord) (*domain.OrderRecord, error) {
	query, args, err := buildInsert(order)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&order.ID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order_number=%s", ErrDuplicateOrder, order.OrderNumber)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	order.CreatedAt = createdAt.Time
	return order, nil
}

func buildInsert(order *domain.OrderRecord) (string, []interface{}, error) {
	return psqlbuilder.Insert("placed_orders").
		Columns(
			"order_number",
			"session_id",
			"sku",
			"product_name",
			"quantity",
			"tour_date",
			"grand_total",
			"currency",
			"email",
			"payment_link",
			"placed_at",
		).
		Values(
			order.OrderNumber,
			order.SessionID,
			order.SKU,
			order.ProductName,
			order.Quantity,
			order.TourDate,
			order.GrandTotal,
			order.Currency,
			order.Email,
			order.PaymentLink,
			order.PlacedAt,
		).
		Suffix("ON CONFLICT (order_number) DO NOTHING RETURNING id, created_at").
		ToSql()
}
