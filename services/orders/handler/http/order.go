package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/utils"
	"github.com/piresc/urbanthreads/services/orders"
)

// OrderHandler handles HTTP requests for orders and custom orders
type OrderHandler struct {
	orderUC orders.OrderUC
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUC orders.OrderUC) *OrderHandler {
	return &OrderHandler{orderUC: orderUC}
}

// RegisterRoutes registers the order routes on g. writeMiddleware applies to
// the create endpoints only.
func (h *OrderHandler) RegisterRoutes(g *echo.Group, writeMiddleware ...echo.MiddlewareFunc) {
	g.POST("/orders", h.CreateOrder, writeMiddleware...)
	g.GET("/orders/:id", h.GetOrder)
	g.POST("/custom-orders", h.CreateCustomOrder, writeMiddleware...)
	g.GET("/custom-orders", h.ListCustomOrders)
}

// CreateOrder places a new order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to create order", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Order created successfully", order)
}

// GetOrder returns one order by id
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}

// CreateCustomOrder submits a custom design request
func (h *OrderHandler) CreateCustomOrder(c echo.Context) error {
	var req models.CreateCustomOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	customOrder, err := h.orderUC.CreateCustomOrder(c.Request().Context(), &req)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Failed to create custom order", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Custom order submitted successfully", customOrder)
}

// ListCustomOrders returns submitted custom orders
func (h *OrderHandler) ListCustomOrders(c echo.Context) error {
	customOrders, err := h.orderUC.ListCustomOrders(c.Request().Context())
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to list custom orders", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Custom orders retrieved successfully", customOrders)
}
