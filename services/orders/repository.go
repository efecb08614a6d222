package orders

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/urbanthreads/services/orders OrderRepo

// OrderRepo persists orders and custom design requests
type OrderRepo interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	SetOrderPaid(ctx context.Context, id, sessionID string) (bool, error)
	CreateCustomOrder(ctx context.Context, customOrder *models.CustomOrder) error
	ListCustomOrders(ctx context.Context, limit int) ([]models.CustomOrder, error)
}
