package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	nrpkg "github.com/piresc/urbanthreads/internal/pkg/newrelic"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	stripeLibrary        = "stripe-go"
	checkoutSessionsPath = "/v1/checkout/sessions"
	checkoutEventPrefix  = "checkout.session."
	lineItemName         = "Urban Threads order"
)

// StripeGateway talks to Stripe Checkout
type StripeGateway struct {
	api           *client.API
	webhookSecret string
	baseURL       string
}

// NewStripeGateway creates a Stripe Checkout gateway. A nil backends uses
// Stripe's default API endpoints.
func NewStripeGateway(cfg models.PaymentConfig, backends *stripe.Backends) *StripeGateway {
	api := &client.API{}
	api.Init(cfg.StripeAPIKey, backends)
	return &StripeGateway{
		api:           api,
		webhookSecret: cfg.StripeWebhookSecret,
		baseURL:       stripe.APIURL,
	}
}

// CreateSession creates a one-line hosted checkout session for the order amount
func (g *StripeGateway) CreateSession(ctx context.Context, params *models.CheckoutSessionParams) (*models.CheckoutSession, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:    stripe.String(params.SuccessURL),
		CancelURL:     stripe.String(params.CancelURL),
		CustomerEmail: stripe.String(params.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(params.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(lineItemName),
					},
					UnitAmount: stripe.Int64(params.AmountMinor),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	sessionParams.Context = ctx
	for k, v := range params.Metadata {
		sessionParams.AddMetadata(k, v)
	}

	var session *stripe.CheckoutSession
	err := nrpkg.WithExternalSegment(ctx, stripeLibrary, "CheckoutSessions.New", g.baseURL+checkoutSessionsPath, func() error {
		var err error
		session, err = g.api.CheckoutSessions.New(sessionParams)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("stripe create session: %w", err)
	}

	return &models.CheckoutSession{
		SessionID:   session.ID,
		URL:         session.URL,
		AmountTotal: session.AmountTotal,
		Currency:    string(session.Currency),
	}, nil
}

// GetSessionStatus fetches a session and translates its state into local terms
func (g *StripeGateway) GetSessionStatus(ctx context.Context, sessionID string) (*models.ProviderSessionStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	var session *stripe.CheckoutSession
	err := nrpkg.WithExternalSegment(ctx, stripeLibrary, "CheckoutSessions.Get", g.baseURL+checkoutSessionsPath+"/"+sessionID, func() error {
		var err error
		session, err = g.api.CheckoutSessions.Get(sessionID, params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("stripe get session %s: %w", sessionID, err)
	}

	paymentStatus := MapPaymentStatus(session.PaymentStatus, session.Status)
	return &models.ProviderSessionStatus{
		SessionID:     session.ID,
		PaymentStatus: paymentStatus,
		Status:        MapSessionStatus(session.Status, paymentStatus),
		AmountTotal:   session.AmountTotal,
		Currency:      string(session.Currency),
		Metadata:      session.Metadata,
	}, nil
}

// VerifyAndParse checks the Stripe-Signature header and extracts the checkout
// session id from checkout.session.* events
func (g *StripeGateway) VerifyAndParse(ctx context.Context, body []byte, signature string) (*models.WebhookEvent, error) {
	if g.webhookSecret == "" {
		return nil, fmt.Errorf("%w: webhook secret is not configured", apperror.ErrInvalidSignature)
	}

	event, err := webhook.ConstructEventWithOptions(body, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrInvalidSignature, err)
	}

	result := &models.WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if strings.HasPrefix(result.Type, checkoutEventPrefix) && event.Data != nil {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("failed to parse checkout session from event %s: %w", event.ID, err)
		}
		result.SessionID = session.ID
	}
	return result, nil
}

// MapPaymentStatus translates a Stripe payment status. Unpaid sessions that
// have expired are reported as expired.
func MapPaymentStatus(ps stripe.CheckoutSessionPaymentStatus, status stripe.CheckoutSessionStatus) models.PaymentStatus {
	switch ps {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return models.PaymentStatusPaid
	}
	if status == stripe.CheckoutSessionStatusExpired {
		return models.PaymentStatusExpired
	}
	return models.PaymentStatusPending
}

// MapSessionStatus translates a Stripe session status. A paid session is
// always completed.
func MapSessionStatus(status stripe.CheckoutSessionStatus, paymentStatus models.PaymentStatus) models.TransactionStatus {
	if paymentStatus == models.PaymentStatusPaid {
		return models.TransactionStatusCompleted
	}
	if status == stripe.CheckoutSessionStatusExpired {
		return models.TransactionStatusExpired
	}
	return models.TransactionStatusInitiated
}
