package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/internal/utils"
	"github.com/piresc/urbanthreads/services/orders"
	"github.com/shopspring/decimal"
)

const (
	customOrderStatusPending = "pending"
	customOrderListLimit     = 1000
)

// OrderUC implements order placement and custom design requests
type OrderUC struct {
	repo      orders.OrderRepo
	catalogGW orders.CatalogGW
	notifier  orders.NotificationGW
	now       func() time.Time
}

// NewOrderUC creates a new order usecase
func NewOrderUC(repo orders.OrderRepo, catalogGW orders.CatalogGW, notifier orders.NotificationGW) *OrderUC {
	return &OrderUC{
		repo:      repo,
		catalogGW: catalogGW,
		notifier:  notifier,
		now:       time.Now,
	}
}

// CreateOrder prices the requested items from the catalog and stores a
// pending order. Client-supplied prices and totals are never trusted.
func (uc *OrderUC) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	const op = "orders.CreateOrder"

	email := utils.NormalizeEmail(req.CustomerEmail)
	if !utils.IsValidEmail(email) {
		return nil, apperror.BadRequest(op, apperror.ErrInvalidEmail)
	}
	if len(req.Items) == 0 {
		return nil, apperror.BadRequest(op, apperror.ErrEmptyOrder)
	}

	ids := make([]int, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperror.BadRequest(op, apperror.ErrInvalidQuantity)
		}
		ids = append(ids, item.ProductID)
	}

	products, err := uc.catalogGW.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(op, "Failed to create order", err)
	}

	items := make(models.OrderItems, 0, len(req.Items))
	total := decimal.Zero
	for _, requested := range req.Items {
		product, ok := products[requested.ProductID]
		if !ok {
			return nil, apperror.BadRequest(op, fmt.Errorf("%w: %d", apperror.ErrProductNotFound, requested.ProductID))
		}
		if !requested.Price.IsZero() && !requested.Price.Equal(product.Price) {
			logger.WarnCtx(ctx, "Ignoring client item price",
				logger.Int("product_id", product.ID),
				logger.Decimal("client_price", requested.Price),
				logger.Decimal("catalog_price", product.Price))
		}
		item := models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  requested.Quantity,
			Image:     product.Image,
		}
		items = append(items, item)
		total = total.Add(item.Subtotal())
	}

	if !total.IsPositive() {
		return nil, apperror.BadRequest(op, apperror.ErrNonPositiveAmount)
	}
	if !req.Total.IsZero() && !req.Total.Equal(total) {
		logger.WarnCtx(ctx, "Ignoring client order total",
			logger.Decimal("client_total", req.Total),
			logger.Decimal("computed_total", total))
	}

	order := &models.Order{
		ID:            uuid.New().String(),
		Items:         items,
		Total:         total,
		CustomerEmail: email,
		Status:        models.OrderStatusPending,
		CreatedAt:     uc.now().UTC(),
	}
	if err := uc.repo.CreateOrder(ctx, order); err != nil {
		return nil, apperror.Internal(op, "Failed to create order", err)
	}

	logger.InfoCtx(ctx, "Order created",
		logger.String("order_id", order.ID),
		logger.Int("items", len(order.Items)),
		logger.Decimal("total", order.Total))

	uc.notifier.NotifyOrderPlaced(ctx, order)
	return order, nil
}

// GetOrder returns an order by id
func (uc *OrderUC) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	const op = "orders.GetOrder"

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperror.NotFound(op, apperror.ErrOrderNotFound)
	}

	order, err := uc.repo.GetOrder(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.Internal(op, "Failed to retrieve order", err)
	}
	return order, nil
}

// CreateCustomOrder stores a custom design request and alerts the store
func (uc *OrderUC) CreateCustomOrder(ctx context.Context, req *models.CreateCustomOrderRequest) (*models.CustomOrder, error) {
	const op = "orders.CreateCustomOrder"

	email := utils.NormalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, apperror.BadRequest(op, apperror.ErrInvalidEmail)
	}

	customOrder := &models.CustomOrder{
		ID:          uuid.New().String(),
		Email:       email,
		CustomText:  utils.SanitizeOptional(req.CustomText),
		Description: utils.SanitizeOptional(req.Description),
		FileName:    utils.SanitizeOptional(req.FileName),
		Status:      customOrderStatusPending,
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.repo.CreateCustomOrder(ctx, customOrder); err != nil {
		return nil, apperror.Internal(op, "Failed to create custom order", err)
	}

	logger.InfoCtx(ctx, "Custom order created", logger.String("custom_order_id", customOrder.ID))

	uc.notifier.NotifyCustomOrderReceived(ctx, customOrder)
	return customOrder, nil
}

// ListCustomOrders returns the most recent custom orders
func (uc *OrderUC) ListCustomOrders(ctx context.Context) ([]models.CustomOrder, error) {
	customOrders, err := uc.repo.ListCustomOrders(ctx, customOrderListLimit)
	if err != nil {
		return nil, apperror.Internal("orders.ListCustomOrders", "Failed to retrieve custom orders", err)
	}
	return customOrders, nil
}
