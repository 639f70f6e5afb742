package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zakispin/spinshop/internal/model"
)

// mockOrderPool implements PoolInterface for testing.
type mockOrderPool struct {
	execFn     func(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	queryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (m *mockOrderPool) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	if m.execFn != nil {
		return m.execFn(ctx, sql, arguments...)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (m *mockOrderPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.queryRowFn != nil {
		return m.queryRowFn(ctx, sql, args...)
	}
	return &mockOrderRow{err: pgx.ErrNoRows}
}

// mockOrderRow implements pgx.Row for testing.
type mockOrderRow struct {
	order *model.Order
	err   error
}

func (m *mockOrderRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	items, err := json.Marshal(m.order.Items)
	if err != nil {
		return err
	}
	*(dest[0].(*string)) = m.order.Number
	*(dest[1].(*[]byte)) = items
	*(dest[2].(*float64)) = m.order.Subtotal
	*(dest[3].(*int)) = m.order.DiscountPercent
	*(dest[4].(*float64)) = m.order.DiscountAmount
	*(dest[5].(*float64)) = m.order.Shipping
	*(dest[6].(*float64)) = m.order.Total
	*(dest[7].(*string)) = m.order.CustomerName
	*(dest[8].(*string)) = m.order.Email
	*(dest[9].(*string)) = m.order.City
	*(dest[10].(*string)) = m.order.Address
	*(dest[11].(*time.Time)) = m.order.CreatedAt
	return nil
}

func sampleOrder() *model.Order {
	return &model.Order{
		Number: "D8G3QK0P2M4N6R8T0V1A",
		Items: []model.CartItem{
			{ProductID: "MA-1", Name: "Home Jersey 2025", UnitPrice: 249, Quantity: 2},
		},
		Subtotal:        498,
		DiscountPercent: 10,
		DiscountAmount:  49.8,
		Shipping:        50,
		Total:           498.2,
		CustomerName:    "Yassine El Amrani",
		Email:           "yassine@example.com",
		City:            "Casablanca",
		Address:         "12 Rue des Orangers",
		CreatedAt:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestOrderRepository_Insert_Success(t *testing.T) {
	var capturedSQL string
	var capturedArgs []any
	mock := &mockOrderPool{
		execFn: func(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
			capturedSQL = sql
			capturedArgs = arguments
			return pgconn.NewCommandTag("INSERT 0 1"), nil
		},
	}

	repo := NewOrderRepositoryWithPool(mock)
	err := repo.Insert(context.Background(), sampleOrder())

	require.NoError(t, err)
	assert.Contains(t, capturedSQL, "INSERT INTO orders")
	assert.Contains(t, capturedSQL, "$12")
	require.Len(t, capturedArgs, 12)
	assert.Equal(t, "D8G3QK0P2M4N6R8T0V1A", capturedArgs[0])

	// Items travel as a JSON snapshot
	var items []model.CartItem
	require.NoError(t, json.Unmarshal(capturedArgs[1].([]byte), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "MA-1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestOrderRepository_Insert_DatabaseError(t *testing.T) {
	dbErr := errors.New("database connection failed")
	mock := &mockOrderPool{
		execFn: func(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, dbErr
		},
	}

	repo := NewOrderRepositoryWithPool(mock)
	err := repo.Insert(context.Background(), sampleOrder())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert order")
	assert.True(t, errors.Is(err, dbErr), "should wrap original error")
}

func TestOrderRepository_GetByNumber_Success(t *testing.T) {
	want := sampleOrder()
	mock := &mockOrderPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &mockOrderRow{order: want}
		},
	}

	repo := NewOrderRepositoryWithPool(mock)
	got, err := repo.GetByNumber(context.Background(), want.Number)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Number, got.Number)
	assert.Equal(t, want.Total, got.Total)
	assert.Equal(t, want.CustomerName, got.CustomerName)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "MA-1", got.Items[0].ProductID)
}

func TestOrderRepository_GetByNumber_NotFound(t *testing.T) {
	mock := &mockOrderPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &mockOrderRow{err: pgx.ErrNoRows}
		},
	}

	repo := NewOrderRepositoryWithPool(mock)
	got, err := repo.GetByNumber(context.Background(), "UNKNOWN")

	require.NoError(t, err, "not found is not an error at this layer")
	assert.Nil(t, got)
}

func TestOrderRepository_GetByNumber_ScanError(t *testing.T) {
	scanErr := errors.New("scan error")
	mock := &mockOrderPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return &mockOrderRow{err: scanErr}
		},
	}

	repo := NewOrderRepositoryWithPool(mock)
	got, err := repo.GetByNumber(context.Background(), "D8G3QK0P2M4N6R8T0V1A")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "get order by number")
	assert.True(t, errors.Is(err, scanErr), "should wrap original error")
}

func TestOrderRepository_GetByNumber_VerifiesParameterizedQuery(t *testing.T) {
	var capturedSQL string
	var capturedArgs []any
	mock := &mockOrderPool{
		queryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
			capturedSQL = sql
			capturedArgs = args
			return &mockOrderRow{err: pgx.ErrNoRows}
		},
	}

	repo := NewOrderRepositoryWithPool(mock)
	_, _ = repo.GetByNumber(context.Background(), "'; DROP TABLE orders;--")

	assert.Contains(t, capturedSQL, "$1")
	assert.NotContains(t, capturedSQL, "DROP TABLE", "SQL injection should not appear in query")
	assert.Equal(t, "'; DROP TABLE orders;--", capturedArgs[0], "Number should be passed as parameter")
}
