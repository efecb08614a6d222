package usecase

import (
	"context"
	"strings"

	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/catalog"
)

// CatalogUC implements catalog lookups
type CatalogUC struct {
	repo catalog.CatalogRepo
}

// NewCatalogUC creates a new catalog usecase
func NewCatalogUC(repo catalog.CatalogRepo) *CatalogUC {
	return &CatalogUC{repo: repo}
}

// ListProducts returns the whole catalog
func (uc *CatalogUC) ListProducts(ctx context.Context) ([]models.Product, error) {
	products, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, apperror.Internal("catalog.ListProducts", "Failed to retrieve products", err)
	}
	return products, nil
}

// ListProductsByCategory returns the products of a category. Category names
// are matched case-insensitively; an unknown category yields an empty list.
func (uc *CatalogUC) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, apperror.BadRequest("catalog.ListProductsByCategory", apperror.ErrMissingCategory)
	}

	products, err := uc.repo.ListProductsByCategory(ctx, category)
	if err != nil {
		return nil, apperror.Internal("catalog.ListProductsByCategory", "Failed to retrieve products", err)
	}
	return products, nil
}

// GetProduct returns a single product
func (uc *CatalogUC) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	if id <= 0 {
		return nil, apperror.NotFound("catalog.GetProduct", apperror.ErrProductNotFound)
	}

	product, err := uc.repo.GetProduct(ctx, id)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.Internal("catalog.GetProduct", "Failed to retrieve product", err)
	}
	return product, nil
}

// GetProductsByIDs returns the authoritative products for ids, keyed by id
func (uc *CatalogUC) GetProductsByIDs(ctx context.Context, ids []int) (map[int]models.Product, error) {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	products, err := uc.repo.GetProductsByIDs(ctx, unique)
	if err != nil {
		return nil, apperror.Internal("catalog.GetProductsByIDs", "Failed to retrieve products", err)
	}
	return products, nil
}
