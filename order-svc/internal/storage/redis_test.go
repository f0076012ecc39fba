package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overcooked-delivery/order-svc/internal/domain"
)

func TestRedisMenuCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedisMenuCache(client, time.Minute)
	ctx := context.Background()

	menu, err := cache.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, menu)

	stored := &domain.Menu{
		RestaurantID:  1,
		DeliveryPrice: decimal.RequireFromString("12.00"),
		Meals:         []domain.Meal{{ID: 1, Name: "Burger", Ingredients: []string{"beef"}, Price: decimal.RequireFromString("10.00")}},
		Drinks:        []domain.Drink{{ID: 10, Name: "Lemonade", Price: decimal.RequireFromString("2.50")}},
	}
	require.NoError(t, cache.Set(ctx, stored))
	assert.Equal(t, time.Minute, mr.TTL("menu:1"))

	menu, err = cache.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, menu)
	assert.True(t, menu.DeliveryPrice.Equal(stored.DeliveryPrice))
	assert.True(t, menu.Drinks[0].Price.Equal(decimal.RequireFromString("2.5")))

	require.NoError(t, cache.Invalidate(ctx, 1))
	assert.False(t, mr.Exists("menu:1"))
}

func TestRedisMenuCache_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewRedisMenuCache(client, time.Minute)
	mr.Close()

	_, err := cache.Get(context.Background(), 1)

	assert.Error(t, err)
}
