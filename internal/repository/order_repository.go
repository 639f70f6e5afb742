package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zakispin/spinshop/internal/model"
)

// PoolInterface defines the database operations needed by the order
// repository. This allows for easier testing with mocks.
type PoolInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// OrderRepository provides data access for placed orders using pgx.
type OrderRepository struct {
	pool PoolInterface
}

// NewOrderRepository creates a new OrderRepository with the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// NewOrderRepositoryWithPool creates an OrderRepository with a custom
// pool interface. This is primarily used for testing.
func NewOrderRepositoryWithPool(pool PoolInterface) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Insert records a placed order. Line items are stored as a JSONB
// snapshot; the catalog may change, the order must not.
func (r *OrderRepository) Insert(ctx context.Context, order *model.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshal order items: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO orders (number, items, subtotal, discount_percent, discount_amount, shipping, total,
		                     customer_name, email, city, address, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		order.Number, items, order.Subtotal, order.DiscountPercent, order.DiscountAmount,
		order.Shipping, order.Total, order.CustomerName, order.Email, order.City, order.Address,
		order.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order %s: %w", order.Number, err)
	}
	return nil
}

// GetByNumber retrieves an order by its public number.
// Returns nil, nil if the order is not found (service layer handles this).
func (r *OrderRepository) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	query := `SELECT number, items, subtotal, discount_percent, discount_amount, shipping, total,
	                 customer_name, email, city, address, created_at
	          FROM orders WHERE number = $1`

	var order model.Order
	var items []byte
	err := r.pool.QueryRow(ctx, query, number).Scan(
		&order.Number,
		&items,
		&order.Subtotal,
		&order.DiscountPercent,
		&order.DiscountAmount,
		&order.Shipping,
		&order.Total,
		&order.CustomerName,
		&order.Email,
		&order.City,
		&order.Address,
		&order.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found - let service handle
		}
		return nil, fmt.Errorf("get order by number %s: %w", number, err)
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("unmarshal order items for %s: %w", number, err)
	}
	return &order, nil
}
