package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/models"
)

const productColumns = `id, category, name, price, image, description`

// ProductRepo reads products from PostgreSQL
type ProductRepo struct {
	db *sqlx.DB
}

// NewProductRepository creates a PostgreSQL-backed catalog repository
func NewProductRepository(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// ListProducts returns every product ordered by id
func (r *ProductRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListProductsByCategory returns the products of one category ordered by id
func (r *ProductRepo) ListProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products := []models.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 ORDER BY id`
	if err := r.db.SelectContext(ctx, &products, query, category); err != nil {
		return nil, fmt.Errorf("failed to list products for category %s: %w", category, err)
	}
	return products, nil
}

// GetProduct returns a single product
func (r *ProductRepo) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	if err := r.db.GetContext(ctx, &product, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("catalog.GetProduct", apperror.ErrProductNotFound)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}

// GetProductsByIDs returns the products found among ids, keyed by id.
// Missing ids are simply absent from the result.
func (r *ProductRepo) GetProductsByIDs(ctx context.Context, ids []int) (map[int]models.Product, error) {
	result := make(map[int]models.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT `+productColumns+` FROM products WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build product lookup: %w", err)
	}

	var products []models.Product
	if err := r.db.SelectContext(ctx, &products, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to look up products: %w", err)
	}

	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}
