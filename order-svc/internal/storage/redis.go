package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"overcooked-delivery/order-svc/internal/domain"
)

type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) MenuKey(restaurantID int) string {
	return "menu:" + strconv.Itoa(restaurantID)
}

// Get returns (nil, nil) when the menu is not cached.
func (c *RedisMenuCache) Get(ctx context.Context, restaurantID int) (*domain.Menu, error) {
	payload, err := c.Client.Get(ctx, c.MenuKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var menu domain.Menu
	if err := json.Unmarshal(payload, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

func (c *RedisMenuCache) Set(ctx context.Context, menu *domain.Menu) error {
	payload, err := json.Marshal(menu)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.MenuKey(menu.RestaurantID), payload, c.TTL).Err()
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, restaurantID int) error {
	return c.Client.Del(ctx, c.MenuKey(restaurantID)).Err()
}
