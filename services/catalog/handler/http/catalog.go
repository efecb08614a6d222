package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/urbanthreads/internal/pkg/logger"
	"github.com/piresc/urbanthreads/internal/utils"
	"github.com/piresc/urbanthreads/services/catalog"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// RegisterRoutes registers the catalog routes on g
func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.ListProducts)
	g.GET("/products/category/:category", h.ListProductsByCategory)
	g.GET("/products/:id", h.GetProduct)
}

// ListProducts returns the whole catalog
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogUC.ListProducts(c.Request().Context())
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to list products", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

// ListProductsByCategory returns the products of one category
func (h *CatalogHandler) ListProductsByCategory(c echo.Context) error {
	products, err := h.catalogUC.ListProductsByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

// GetProduct returns one product by numeric id
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}
