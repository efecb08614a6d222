package catalog

import (
	"context"

	"github.com/piresc/urbanthreads/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/urbanthreads/services/catalog CatalogRepo

// CatalogRepo defines read-only access to the product catalog
type CatalogRepo interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	GetProductsByIDs(ctx context.Context, ids []int) (map[int]models.Product, error)
}
