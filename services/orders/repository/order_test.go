package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/orders/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderCols = []string{"id", "items", "total", "customer_email", "status", "payment_session_id", "created_at"}

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCreateOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(db)

	order := &models.Order{
		ID:            "order-1",
		Items:         models.OrderItems{{ProductID: 1, Name: "Oversized Hoodie", Price: decimal.RequireFromString("28"), Quantity: 1}},
		Total:         decimal.RequireFromString("28"),
		CustomerEmail: "jane@example.com",
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).
		WithArgs("order-1", sqlmock.AnyArg(), sqlmock.AnyArg(), "jane@example.com", "pending", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateOrder(context.Background(), order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO orders")).WillReturnError(errors.New("duplicate key"))

	err := repo.CreateOrder(context.Background(), &models.Order{ID: "order-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "order-1")
}

func TestGetOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(db)

	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows(orderCols).AddRow(
			"order-1",
			[]byte(`[{"product_id":1,"name":"Oversized Hoodie","price":"28.00","quantity":2,"image":""}]`),
			"56.00", "jane@example.com", "pending", nil, created))

	order, err := repo.GetOrder(context.Background(), "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("56")))
	assert.Nil(t, order.PaymentSessionID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestGetOrder_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(orderCols))

	_, err := repo.GetOrder(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))
	assert.ErrorIs(t, err, apperror.ErrOrderNotFound)
}

func TestSetOrderPaid(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"pending order flips", 1, true},
		{"already paid order is untouched", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := repository.NewOrderRepository(db)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE orders SET status = 'paid', payment_session_id = $2 WHERE id = $1 AND status = 'pending'")).
				WithArgs("order-1", "cs_test_1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			ok, err := repo.SetOrderPaid(context.Background(), "order-1", "cs_test_1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateCustomOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(db)

	text := "Stay Weird"
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO custom_orders")).
		WithArgs("custom-1", "jane@example.com", "Stay Weird", nil, nil, "pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateCustomOrder(context.Background(), &models.CustomOrder{
		ID:         "custom-1",
		Email:      "jane@example.com",
		CustomText: &text,
		Status:     "pending",
		CreatedAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCustomOrders(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewOrderRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM custom_orders ORDER BY created_at DESC LIMIT $1")).
		WithArgs(1000).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "custom_text", "description", "file_name", "status", "created_at"}).
			AddRow("custom-1", "jane@example.com", "Stay Weird", nil, "design.png", "pending", time.Now()))

	customOrders, err := repo.ListCustomOrders(context.Background(), 1000)
	require.NoError(t, err)
	require.Len(t, customOrders, 1)
	require.NotNil(t, customOrders[0].FileName)
	assert.Equal(t, "design.png", *customOrders[0].FileName)
	assert.Nil(t, customOrders[0].Description)
}
