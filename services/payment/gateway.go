package payment

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/urbanthreads/services/payment CheckoutGW,OrderGW

// CheckoutGW is the hosted checkout provider
type CheckoutGW interface {
	CreateSession(ctx context.Context, params *models.CheckoutSessionParams) (*models.CheckoutSession, error)
	GetSessionStatus(ctx context.Context, sessionID string) (*models.ProviderSessionStatus, error)
	VerifyAndParse(ctx context.Context, body []byte, signature string) (*models.WebhookEvent, error)
}

// OrderGW reads the orders being paid for
type OrderGW interface {
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}
