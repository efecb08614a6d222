package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/piresc/urbanthreads/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, &RedisClient{Client: client}
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: mustPort(t, mr), PoolSize: 2})
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetClient())
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: 1})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "catalog:products:all", "[]", time.Minute))

	val, err := client.Get(ctx, "catalog:products:all")
	require.NoError(t, err)
	assert.Equal(t, "[]", val)
	assert.True(t, mr.TTL("catalog:products:all") > 0)

	require.NoError(t, client.Delete(ctx, "catalog:products:all"))
	_, err = client.Get(ctx, "catalog:products:all")
	assert.Equal(t, redis.Nil, err)
}

func TestRedisClient_IncrWithExpiry(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	count, ttl, err := client.IncrWithExpiry(ctx, "rate:limit:orders:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, time.Minute, ttl)

	count, ttl, err = client.IncrWithExpiry(ctx, "rate:limit:orders:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.True(t, ttl > 0)

	mr.FastForward(2 * time.Minute)
	count, _, err = client.IncrWithExpiry(ctx, "rate:limit:orders:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
