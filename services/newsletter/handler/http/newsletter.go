package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/utils"
	"github.com/piresc/urbanthreads/services/newsletter"
)

// NewsletterHandler handles HTTP requests for newsletter subscriptions
type NewsletterHandler struct {
	newsletterUC newsletter.NewsletterUC
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(newsletterUC newsletter.NewsletterUC) *NewsletterHandler {
	return &NewsletterHandler{newsletterUC: newsletterUC}
}

// RegisterRoutes registers the newsletter routes on g
func (h *NewsletterHandler) RegisterRoutes(g *echo.Group, writeMiddleware ...echo.MiddlewareFunc) {
	g.POST("/newsletter/subscribe", h.Subscribe, writeMiddleware...)
	g.GET("/newsletter/subscribers", h.ListSubscribers)
}

// Subscribe adds an email address to the newsletter
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req models.SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.newsletterUC.Subscribe(c.Request().Context(), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// ListSubscribers returns newsletter subscribers
func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	subscribers, err := h.newsletterUC.ListSubscribers(c.Request().Context())
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Subscribers retrieved successfully", subscribers)
}
