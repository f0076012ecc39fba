package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"overcooked-delivery/stats-svc/internal/domain"
)

const (
	KindMeals  = "meals"
	KindDrinks = "drinks"

	dailyTTL     = 7 * 24 * time.Hour
	processedTTL = 7 * 24 * time.Hour
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func itemsKey(restaurantID int, kind string) string {
	return fmt.Sprintf("stats:%d:%s", restaurantID, kind)
}

func totalsKey(restaurantID int) string {
	return fmt.Sprintf("stats:%d:totals", restaurantID)
}

func dailyMealsKey(day string) string {
	return "stats:daily:" + day + ":meals"
}

func processedKey(orderID int) string {
	return "stats:processed:" + strconv.Itoa(orderID)
}

// MarkProcessed records orderID and reports whether it was seen for the first time.
func (s *Store) MarkProcessed(ctx context.Context, orderID int) (bool, error) {
	return s.rdb.SetNX(ctx, processedKey(orderID), "1", processedTTL).Result()
}

// UnmarkProcessed releases the marker so a redelivered event is counted.
func (s *Store) UnmarkProcessed(ctx context.Context, orderID int) error {
	return s.rdb.Del(ctx, processedKey(orderID)).Err()
}

// RecordOrder applies one order to the per-restaurant and daily aggregates.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderCreatedEvent, revenueCents int64) error {
	day := event.Timestamp.UTC().Format("2006-01-02")
	if event.Timestamp.IsZero() {
		day = time.Now().UTC().Format("2006-01-02")
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, line := range event.Meals {
			pipe.ZIncrBy(ctx, itemsKey(event.RestaurantID, KindMeals), float64(line.Quantity), strconv.Itoa(line.ItemID))
			pipe.ZIncrBy(ctx, dailyMealsKey(day), float64(line.Quantity),
				strconv.Itoa(event.RestaurantID)+":"+strconv.Itoa(line.ItemID))
		}
		for _, line := range event.Drinks {
			pipe.ZIncrBy(ctx, itemsKey(event.RestaurantID, KindDrinks), float64(line.Quantity), strconv.Itoa(line.ItemID))
		}
		pipe.HIncrBy(ctx, totalsKey(event.RestaurantID), "orders", 1)
		pipe.HIncrBy(ctx, totalsKey(event.RestaurantID), "revenue_cents", revenueCents)
		if len(event.Meals) > 0 {
			pipe.Expire(ctx, dailyMealsKey(day), dailyTTL)
		}
		return nil
	})
	return err
}

func (s *Store) TopItems(ctx context.Context, restaurantID int, kind string, limit int) ([]domain.ItemStat, error) {
	results, err := s.rdb.ZRevRangeWithScores(ctx, itemsKey(restaurantID, kind), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.ItemStat, 0, len(results))
	for _, result := range results {
		itemID, err := strconv.Atoi(result.Member.(string))
		if err != nil {
			continue
		}
		top = append(top, domain.ItemStat{ItemID: itemID, Quantity: int64(result.Score)})
	}
	return top, nil
}

// TopMealsOn returns the restaurant's best selling meals for one UTC day.
func (s *Store) TopMealsOn(ctx context.Context, restaurantID int, day string, limit int) ([]domain.ItemStat, error) {
	results, err := s.rdb.ZRevRangeWithScores(ctx, dailyMealsKey(day), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	prefix := strconv.Itoa(restaurantID) + ":"
	top := []domain.ItemStat{}
	for _, result := range results {
		member, ok := result.Member.(string)
		if !ok || !strings.HasPrefix(member, prefix) {
			continue
		}
		itemID, err := strconv.Atoi(strings.TrimPrefix(member, prefix))
		if err != nil {
			continue
		}
		top = append(top, domain.ItemStat{ItemID: itemID, Quantity: int64(result.Score)})
		if len(top) == limit {
			break
		}
	}
	return top, nil
}

func (s *Store) Totals(ctx context.Context, restaurantID int) (domain.Totals, error) {
	values, err := s.rdb.HMGet(ctx, totalsKey(restaurantID), "orders", "revenue_cents").Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return domain.Totals{}, err
	}

	var totals domain.Totals
	if len(values) == 2 {
		totals.Orders = parseCounter(values[0])
		totals.RevenueCents = parseCounter(values[1])
	}
	return totals, nil
}

func parseCounter(value interface{}) int64 {
	s, ok := value.(string)
	if !ok {
		return 0
	}
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
