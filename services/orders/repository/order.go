package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/models"
)

const (
	orderColumns       = `id, items, total, customer_email, status, payment_session_id, created_at`
	customOrderColumns = `id, email, custom_text, description, file_name, status, created_at`

	markOrderPaidQuery = `UPDATE orders SET status = 'paid', payment_session_id = $2 WHERE id = $1 AND status = 'pending'`
)

// OrderRepo stores orders in PostgreSQL
type OrderRepo struct {
	db *sqlx.DB
}

// NewOrderRepository creates a PostgreSQL-backed order repository
func NewOrderRepository(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// CreateOrder inserts a new order
func (r *OrderRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES (:id, :items, :total, :customer_email, :status, :payment_session_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, order); err != nil {
		return fmt.Errorf("failed to create order %s: %w", order.ID, err)
	}
	return nil
}

// GetOrder returns an order by id
func (r *OrderRepo) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if err := r.db.GetContext(ctx, &order, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("orders.GetOrder", apperror.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order %s: %w", id, err)
	}
	return &order, nil
}

// SetOrderPaid flips a pending order to paid. It reports false when the order
// was missing or already paid.
func (r *OrderRepo) SetOrderPaid(ctx context.Context, id, sessionID string) (bool, error) {
	return MarkOrderPaid(ctx, r.db, id, sessionID)
}

// MarkOrderPaid runs the pending to paid transition on exec, which may be a
// *sqlx.DB or a *sqlx.Tx owned by another repository
func MarkOrderPaid(ctx context.Context, exec sqlx.ExecerContext, id, sessionID string) (bool, error) {
	res, err := exec.ExecContext(ctx, markOrderPaidQuery, id, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to mark order %s paid: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows == 1, nil
}

// CreateCustomOrder inserts a custom design request
func (r *OrderRepo) CreateCustomOrder(ctx context.Context, customOrder *models.CustomOrder) error {
	query := `INSERT INTO custom_orders (` + customOrderColumns + `)
		VALUES (:id, :email, :custom_text, :description, :file_name, :status, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, customOrder); err != nil {
		return fmt.Errorf("failed to create custom order %s: %w", customOrder.ID, err)
	}
	return nil
}

// ListCustomOrders returns the newest custom orders first
func (r *OrderRepo) ListCustomOrders(ctx context.Context, limit int) ([]models.CustomOrder, error) {
	customOrders := []models.CustomOrder{}
	query := `SELECT ` + customOrderColumns + ` FROM custom_orders ORDER BY created_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &customOrders, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list custom orders: %w", err)
	}
	return customOrders, nil
}
