package orders

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/urbanthreads/services/orders OrderUC

// OrderUC defines the order use cases
type OrderUC interface {
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	CreateCustomOrder(ctx context.Context, req *models.CreateCustomOrderRequest) (*models.CustomOrder, error)
	ListCustomOrders(ctx context.Context) ([]models.CustomOrder, error)
}
