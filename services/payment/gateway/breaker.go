package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/urbanthreads/internal/pkg/circuitbreaker"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/payment"
	"github.com/stripe/stripe-go/v76"
)

// BreakerGateway stops calling the checkout provider while it is failing.
// Webhook verification is local and always passes through.
type BreakerGateway struct {
	next    payment.CheckoutGW
	breaker *circuitbreaker.CircuitBreaker
}

// NewBreakerGateway wraps next with a circuit breaker
func NewBreakerGateway(next payment.CheckoutGW, cfg circuitbreaker.Config) *BreakerGateway {
	if cfg.IsFailure == nil {
		cfg.IsFailure = IsProviderOutage
	}
	return &BreakerGateway{next: next, breaker: circuitbreaker.New(cfg)}
}

// CreateSession implements payment.CheckoutGW
func (g *BreakerGateway) CreateSession(ctx context.Context, params *models.CheckoutSessionParams) (*models.CheckoutSession, error) {
	var session *models.CheckoutSession
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		session, err = g.next.CreateSession(ctx, params)
		return err
	})
	if err != nil {
		return nil, wrapOpen(err)
	}
	return session, nil
}

// GetSessionStatus implements payment.CheckoutGW
func (g *BreakerGateway) GetSessionStatus(ctx context.Context, sessionID string) (*models.ProviderSessionStatus, error) {
	var status *models.ProviderSessionStatus
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		status, err = g.next.GetSessionStatus(ctx, sessionID)
		return err
	})
	if err != nil {
		return nil, wrapOpen(err)
	}
	return status, nil
}

// VerifyAndParse implements payment.CheckoutGW
func (g *BreakerGateway) VerifyAndParse(ctx context.Context, body []byte, signature string) (*models.WebhookEvent, error) {
	return g.next.VerifyAndParse(ctx, body, signature)
}

// IsProviderOutage reports whether err says the provider is unhealthy.
// Stripe rejections below 500 are caller mistakes and do not count.
func IsProviderOutage(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode > 0 && stripeErr.HTTPStatusCode < 500 {
		return false
	}
	return true
}

func wrapOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
		return fmt.Errorf("checkout provider unavailable: %w", err)
	}
	return err
}
