package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/utils"
	"github.com/piresc/urbanthreads/services/payment"
	"github.com/shopspring/decimal"
)

const (
	successPath     = "/checkout/success?session_id={CHECKOUT_SESSION_ID}"
	cancelPath      = "/cart"
	webhookAckState = "success"
)

// Currencies Stripe charges in whole units
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true, "krw": true, "mga": true,
	"pyg": true, "rwf": true, "ugx": true, "vnd": true, "vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// PaymentUC creates checkout sessions and reconciles their outcome
type PaymentUC struct {
	repo       payment.PaymentRepo
	checkoutGW payment.CheckoutGW
	orderGW    payment.OrderGW
	cfg        *models.Config
	now        func() time.Time
}

// NewPaymentUC creates a new payment usecase
func NewPaymentUC(repo payment.PaymentRepo, checkoutGW payment.CheckoutGW, orderGW payment.OrderGW, cfg *models.Config) *PaymentUC {
	return &PaymentUC{
		repo:       repo,
		checkoutGW: checkoutGW,
		orderGW:    orderGW,
		cfg:        cfg,
		now:        time.Now,
	}
}

// CreateSession opens a hosted checkout session for the stored order total
// and records a pending transaction before the customer is redirected
func (uc *PaymentUC) CreateSession(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutSession, error) {
	const op = "payment.CreateSession"

	email := utils.NormalizeEmail(req.CustomerEmail)
	if !utils.IsValidEmail(email) {
		return nil, apperror.BadRequest(op, apperror.ErrInvalidEmail)
	}
	origin, err := normalizeOrigin(req.OriginURL)
	if err != nil {
		return nil, apperror.BadRequest(op, err)
	}

	order, err := uc.orderGW.GetOrder(ctx, strings.TrimSpace(req.OrderID))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.Internal(op, "Failed to create checkout session", err)
	}
	if order.Status == models.OrderStatusPaid {
		return nil, apperror.BadRequest(op, apperror.ErrOrderAlreadyPaid)
	}

	currency := uc.cfg.Payment.Currency
	amount := toMinorUnits(order.Total, currency)
	if amount <= 0 {
		return nil, apperror.BadRequest(op, apperror.ErrNonPositiveAmount)
	}

	session, err := uc.checkoutGW.CreateSession(ctx, &models.CheckoutSessionParams{
		AmountMinor:   amount,
		Currency:      currency,
		SuccessURL:    origin + successPath,
		CancelURL:     origin + cancelPath,
		CustomerEmail: email,
		Metadata: map[string]string{
			models.MetadataOrderID:       order.ID,
			models.MetadataCustomerEmail: email,
			models.MetadataSource:        uc.cfg.Payment.SourceTag,
		},
	})
	if err != nil {
		return nil, apperror.Internal(op, "Failed to create checkout session", err)
	}

	now := uc.now().UTC()
	txn := &models.PaymentTransaction{
		ID:            uuid.New().String(),
		SessionID:     session.SessionID,
		Amount:        order.Total,
		Currency:      currency,
		CustomerEmail: email,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.TransactionStatusInitiated,
		Metadata: models.Metadata{
			models.MetadataOrderID:       order.ID,
			models.MetadataCustomerEmail: email,
			models.MetadataSessionID:     session.SessionID,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, apperror.Internal(op, "Failed to create checkout session", err)
	}

	logger.InfoCtx(ctx, "Checkout session created",
		logger.String("session_id", session.SessionID),
		logger.String("order_id", order.ID),
		logger.Int64("amount_minor", amount),
		logger.String("currency", currency))
	return session, nil
}

// Reconcile applies the provider's view of a session to the stored
// transaction and, on the first observation of payment, to the order.
// Settled transactions are never written again.
func (uc *PaymentUC) Reconcile(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	const op = "payment.Reconcile"

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, apperror.NotFound(op, apperror.ErrTransactionNotFound)
	}

	txn, err := uc.repo.GetTransactionBySession(ctx, sessionID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.Internal(op, "Failed to get checkout status", err)
	}

	providerStatus, err := uc.checkoutGW.GetSessionStatus(ctx, sessionID)
	if err != nil {
		return nil, apperror.Internal(op, "Failed to get checkout status", err)
	}

	update := &models.TransactionUpdate{
		SessionID:     sessionID,
		PaymentStatus: providerStatus.PaymentStatus,
		Status:        transactionStatus(providerStatus),
		UpdatedAt:     uc.now().UTC(),
		OrderID:       txn.OrderID(),
	}
	result := &models.CheckoutStatus{
		SessionID:     sessionID,
		Status:        update.Status,
		PaymentStatus: update.PaymentStatus,
		AmountTotal:   providerStatus.AmountTotal,
		Currency:      providerStatus.Currency,
		Metadata:      providerStatus.Metadata,
	}
	if result.Metadata == nil {
		result.Metadata = txn.Metadata
	}

	if txn.IsSettled() {
		logger.DebugCtx(ctx, "Checkout session already settled", logger.String("session_id", sessionID))
		return result, nil
	}

	settled, err := uc.repo.SettleTransaction(ctx, update)
	if err != nil {
		return nil, apperror.Internal(op, "Failed to get checkout status", err)
	}

	if settled.OrderMarkedPaid {
		logger.InfoCtx(ctx, "Order marked paid",
			logger.String("order_id", update.OrderID),
			logger.String("session_id", sessionID))
	}
	if update.PaymentStatus == models.PaymentStatusPaid && update.OrderID == "" {
		logger.WarnCtx(ctx, "Paid session has no order id", logger.String("session_id", sessionID))
	}
	return result, nil
}

// HandleWebhook verifies a provider event and reconciles the session it
// refers to through the same path as polling
func (uc *PaymentUC) HandleWebhook(ctx context.Context, body []byte, signature string) (*models.WebhookAck, error) {
	const op = "payment.HandleWebhook"

	if strings.TrimSpace(signature) == "" {
		return nil, apperror.BadRequest(op, apperror.ErrMissingSignature)
	}

	event, err := uc.checkoutGW.VerifyAndParse(ctx, body, signature)
	if err != nil {
		logger.WarnCtx(ctx, "Rejected webhook", logger.Err(err))
		return nil, apperror.BadRequest(op, err)
	}

	if event.SessionID != "" {
		if _, err := uc.Reconcile(ctx, event.SessionID); err != nil {
			return nil, err
		}
	}

	logger.InfoCtx(ctx, "Processed webhook event",
		logger.String("event_id", event.ID),
		logger.String("event_type", event.Type),
		logger.String("session_id", event.SessionID))
	return &models.WebhookAck{Status: webhookAckState, EventType: event.Type}, nil
}

func transactionStatus(s *models.ProviderSessionStatus) models.TransactionStatus {
	if s.PaymentStatus == models.PaymentStatusPaid {
		return models.TransactionStatusCompleted
	}
	if s.Status == models.TransactionStatusCompleted {
		return models.TransactionStatusInitiated
	}
	return s.Status
}

func toMinorUnits(amount decimal.Decimal, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToLower(currency)] {
		return amount.Round(0).IntPart()
	}
	return amount.Shift(2).Round(0).IntPart()
}

func normalizeOrigin(raw string) (string, error) {
	origin := strings.TrimRight(strings.TrimSpace(raw), "/")
	if origin == "" {
		return "", apperror.ErrMissingOrigin
	}
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperror.ErrInvalidOrigin
	}
	return origin, nil
}
