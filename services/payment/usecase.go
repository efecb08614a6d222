package payment

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/urbanthreads/services/payment PaymentUC

// PaymentUC defines the checkout session lifecycle
type PaymentUC interface {
	CreateSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSession, error)
	Reconcile(ctx context.Context, sessionID string) (*models.CheckoutStatus, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) (*models.WebhookAck, error)
}
