package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/catalog/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T) (*echo.Echo, *mocks.MockCatalogUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockCatalogUC(ctrl)
	e := echo.New()
	NewCatalogHandler(mockUC).RegisterRoutes(e.Group("/api"))
	return e, mockUC
}

func doGet(e *echo.Echo, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestListProducts(t *testing.T) {
	e, mockUC := newCatalogServer(t)

	mockUC.EXPECT().ListProducts(gomock.Any()).Return([]models.Product{
		{ID: 1, Category: "streetwear", Name: "Oversized Hoodie", Price: decimal.RequireFromString("28.00")},
	}, nil)

	rec, body := doGet(e, "/api/products")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestListProductsByCategory(t *testing.T) {
	e, mockUC := newCatalogServer(t)

	mockUC.EXPECT().ListProductsByCategory(gomock.Any(), "accessories").Return([]models.Product{}, nil)

	rec, body := doGet(e, "/api/products/category/accessories")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
}

func TestGetProduct(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		e, mockUC := newCatalogServer(t)

		mockUC.EXPECT().GetProduct(gomock.Any(), 1).Return(&models.Product{ID: 1, Name: "Oversized Hoodie"}, nil)

		rec, body := doGet(e, "/api/products/1")
		assert.Equal(t, http.StatusOK, rec.Code)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Oversized Hoodie", data["name"])
	})

	t.Run("Not found", func(t *testing.T) {
		e, mockUC := newCatalogServer(t)

		mockUC.EXPECT().GetProduct(gomock.Any(), 404).
			Return(nil, apperror.NotFound("catalog.GetProduct", apperror.ErrProductNotFound))

		rec, body := doGet(e, "/api/products/404")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "product not found", body["error"])
	})

	t.Run("Non-numeric id", func(t *testing.T) {
		e, _ := newCatalogServer(t)

		rec, body := doGet(e, "/api/products/abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid product ID", body["error"])
	})

	t.Run("Internal error", func(t *testing.T) {
		e, mockUC := newCatalogServer(t)

		mockUC.EXPECT().GetProduct(gomock.Any(), 2).
			Return(nil, apperror.Internal("catalog.GetProduct", "Failed to retrieve product", assert.AnError))

		rec, body := doGet(e, "/api/products/2")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to retrieve product", body["error"])
	})
}
