package orders

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/urbanthreads/services/orders CatalogGW,NotificationGW

// CatalogGW looks up the authoritative prices of ordered products
type CatalogGW interface {
	GetProductsByIDs(ctx context.Context, ids []int) (map[int]models.Product, error)
}

// NotificationGW emits fire-and-forget order notifications
type NotificationGW interface {
	NotifyOrderPlaced(ctx context.Context, order *models.Order)
	NotifyCustomOrderReceived(ctx context.Context, customOrder *models.CustomOrder)
}
