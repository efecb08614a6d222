package payment

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/urbanthreads/services/payment PaymentRepo

// PaymentRepo persists payment transactions. Status writes are conditional:
// a transaction that is already paid and completed is never updated again.
type PaymentRepo interface {
	CreateTransaction(ctx context.Context, txn *models.PaymentTransaction) error
	GetTransactionBySession(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	UpdateTransactionBySession(ctx context.Context, update *models.TransactionUpdate) (bool, error)
	// SettleTransaction applies update and, when it newly marks the
	// transaction paid, flips the order to paid in the same database
	// transaction.
	SettleTransaction(ctx context.Context, update *models.TransactionUpdate) (*models.SettleResult, error)
}
