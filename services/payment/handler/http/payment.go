package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/utils"
	"github.com/piresc/urbanthreads/services/payment"
)

const (
	// StripeSignatureHeader carries the webhook signature
	StripeSignatureHeader = "Stripe-Signature"

	maxWebhookBodyBytes = 64 << 10
)

// PaymentHandler handles checkout and webhook HTTP requests
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// RegisterRoutes registers the checkout and webhook routes on g.
// writeMiddleware applies to session creation only.
func (h *PaymentHandler) RegisterRoutes(g *echo.Group, writeMiddleware ...echo.MiddlewareFunc) {
	g.POST("/checkout/create-session", h.CreateSession, writeMiddleware...)
	g.GET("/checkout/status/:sessionID", h.GetStatus)
	g.POST("/webhook/stripe", h.StripeWebhook)
}

// CreateSession starts a hosted checkout for an order
func (h *PaymentHandler) CreateSession(c echo.Context) error {
	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	session, err := h.paymentUC.CreateSession(c.Request().Context(), &req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to create checkout session",
			logger.String("order_id", req.OrderID),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Checkout session created", session)
}

// GetStatus reconciles and returns the status of a checkout session
func (h *PaymentHandler) GetStatus(c echo.Context) error {
	status, err := h.paymentUC.Reconcile(c.Request().Context(), c.Param("sessionID"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Checkout status retrieved", status)
}

// StripeWebhook receives signed Stripe events. The raw body is passed on
// untouched since the signature covers its exact bytes.
func (h *PaymentHandler) StripeWebhook(c echo.Context) error {
	signature := c.Request().Header.Get(StripeSignatureHeader)
	if signature == "" {
		return utils.BadRequestResponse(c, "Missing Stripe signature")
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxWebhookBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return utils.ErrorResponseHandler(c, http.StatusRequestEntityTooLarge, "Webhook payload too large")
		}
		return utils.BadRequestResponse(c, "Invalid webhook payload")
	}

	ack, err := h.paymentUC.HandleWebhook(c.Request().Context(), body, signature)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Webhook processing failed", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, ack)
}
