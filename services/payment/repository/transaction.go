package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	ordersrepo "github.com/piresc/urbanthreads/services/orders/repository"
)

const (
	transactionColumns = `id, session_id, amount, currency, customer_email, payment_status, status, metadata, created_at, updated_at`

	updateUnsettledQuery = `UPDATE payment_transactions
		SET payment_status = $1, status = $2, updated_at = $3
		WHERE session_id = $4 AND NOT (payment_status = 'paid' AND status = 'completed')`
)

// TransactionRepo stores payment transactions in PostgreSQL
type TransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a PostgreSQL-backed payment repository
func NewTransactionRepository(db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// CreateTransaction inserts a new transaction. The unique session_id index
// rejects a second record for the same session.
func (r *TransactionRepo) CreateTransaction(ctx context.Context, txn *models.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (` + transactionColumns + `)
		VALUES (:id, :session_id, :amount, :currency, :customer_email, :payment_status, :status, :metadata, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, txn); err != nil {
		return fmt.Errorf("failed to create payment transaction for session %s: %w", txn.SessionID, err)
	}
	return nil
}

// GetTransactionBySession returns the transaction for a checkout session
func (r *TransactionRepo) GetTransactionBySession(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	var txn models.PaymentTransaction
	query := `SELECT ` + transactionColumns + ` FROM payment_transactions WHERE session_id = $1`
	if err := r.db.GetContext(ctx, &txn, query, sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("payment.GetTransactionBySession", apperror.ErrTransactionNotFound)
		}
		return nil, fmt.Errorf("failed to get payment transaction for session %s: %w", sessionID, err)
	}
	return &txn, nil
}

// UpdateTransactionBySession writes new status fields unless the transaction
// is already settled. It reports whether a row changed.
func (r *TransactionRepo) UpdateTransactionBySession(ctx context.Context, update *models.TransactionUpdate) (bool, error) {
	return updateUnsettled(ctx, r.db, update)
}

// SettleTransaction applies update and the resulting order transition
// atomically. Concurrent callers racing on the same session serialize on the
// row lock taken by the conditional update, so only one of them observes the
// transition and flips the order.
func (r *TransactionRepo) SettleTransaction(ctx context.Context, update *models.TransactionUpdate) (result *models.SettleResult, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.ErrorCtx(ctx, "Failed to roll back settlement",
					logger.String("session_id", update.SessionID),
					logger.Err(rbErr))
			}
		}
	}()

	result = &models.SettleResult{}
	result.TransactionUpdated, err = updateUnsettled(ctx, tx, update)
	if err != nil {
		return nil, err
	}

	if result.TransactionUpdated && update.PaymentStatus == models.PaymentStatusPaid && update.OrderID != "" {
		result.OrderMarkedPaid, err = ordersrepo.MarkOrderPaid(ctx, tx, update.OrderID, update.SessionID)
		if err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit settlement for session %s: %w", update.SessionID, err)
	}
	return result, nil
}

func updateUnsettled(ctx context.Context, exec sqlx.ExecerContext, update *models.TransactionUpdate) (bool, error) {
	res, err := exec.ExecContext(ctx, updateUnsettledQuery,
		update.PaymentStatus, update.Status, update.UpdatedAt, update.SessionID)
	if err != nil {
		return false, fmt.Errorf("failed to update payment transaction for session %s: %w", update.SessionID, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return rows == 1, nil
}
