package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/piresc/urbanthreads/internal/pkg/apperror"
	"github.com/piresc/urbanthreads/internal/pkg/database"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/piresc/urbanthreads/services/catalog/mocks"
	"github.com/piresc/urbanthreads/services/catalog/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	return mr, &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func hoodie() models.Product {
	return models.Product{ID: 1, Category: "streetwear", Name: "Oversized Hoodie", Price: decimal.RequireFromString("28.00")}
}

func TestCachedProductRepo_ListProductsReadsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, client := setupCache(t)
	next := mocks.NewMockCatalogRepo(ctrl)
	repo := repository.NewCachedProductRepository(next, client, 10*time.Minute)

	next.EXPECT().ListProducts(gomock.Any()).Return([]models.Product{hoodie()}, nil).Times(1)

	first, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	second, err := repo.ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first[0].Name, second[0].Name)
	assert.True(t, first[0].Price.Equal(second[0].Price))
	assert.True(t, mr.Exists("catalog:products:all"))
	assert.Equal(t, 10*time.Minute, mr.TTL("catalog:products:all"))
}

func TestCachedProductRepo_ExpiredEntryReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, client := setupCache(t)
	next := mocks.NewMockCatalogRepo(ctrl)
	repo := repository.NewCachedProductRepository(next, client, time.Minute)

	next.EXPECT().ListProductsByCategory(gomock.Any(), "streetwear").Return([]models.Product{hoodie()}, nil).Times(2)

	_, err := repo.ListProductsByCategory(context.Background(), "streetwear")
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)
	_, err = repo.ListProductsByCategory(context.Background(), "streetwear")
	require.NoError(t, err)
}

func TestCachedProductRepo_NotFoundIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, client := setupCache(t)
	next := mocks.NewMockCatalogRepo(ctrl)
	repo := repository.NewCachedProductRepository(next, client, time.Minute)

	next.EXPECT().GetProduct(gomock.Any(), 9).
		Return(nil, apperror.NotFound("catalog.GetProduct", apperror.ErrProductNotFound))

	_, err := repo.GetProduct(context.Background(), 9)
	assert.True(t, apperror.IsNotFound(err))
	assert.False(t, mr.Exists("catalog:product:9"))
}

func TestCachedProductRepo_CorruptEntryReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, client := setupCache(t)
	next := mocks.NewMockCatalogRepo(ctrl)
	repo := repository.NewCachedProductRepository(next, client, time.Minute)

	require.NoError(t, mr.Set("catalog:product:1", "{not json"))
	p := hoodie()
	next.EXPECT().GetProduct(gomock.Any(), 1).Return(&p, nil)

	product, err := repo.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Oversized Hoodie", product.Name)
}

func TestCachedProductRepo_RedisDownFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mr, client := setupCache(t)
	mr.Close()
	next := mocks.NewMockCatalogRepo(ctrl)
	repo := repository.NewCachedProductRepository(next, client, time.Minute)

	next.EXPECT().ListProducts(gomock.Any()).Return([]models.Product{hoodie()}, nil)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCachedProductRepo_GetProductsByIDsBypassesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, client := setupCache(t)
	next := mocks.NewMockCatalogRepo(ctrl)
	repo := repository.NewCachedProductRepository(next, client, time.Minute)

	next.EXPECT().GetProductsByIDs(gomock.Any(), []int{1}).Return(nil, errors.New("db down")).Times(2)

	_, err := repo.GetProductsByIDs(context.Background(), []int{1})
	assert.Error(t, err)
	_, err = repo.GetProductsByIDs(context.Background(), []int{1})
	assert.Error(t, err)
}
