package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"overcooked-delivery/stats-svc/internal/domain"
	"overcooked-delivery/stats-svc/internal/storage"
)

const (
	DefaultLimit = 5
	MaxLimit     = 50
)

type StatsService struct {
	store StoreInterface
	now   func() time.Time
}

func NewStatsService(store StoreInterface) *StatsService {
	return &StatsService{store: store, now: time.Now}
}

func (s *StatsService) RestaurantStats(ctx context.Context, restaurantID, limit int) (*domain.RestaurantStats, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	totals, err := s.store.Totals(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	meals, err := s.store.TopItems(ctx, restaurantID, storage.KindMeals, limit)
	if err != nil {
		return nil, err
	}
	drinks, err := s.store.TopItems(ctx, restaurantID, storage.KindDrinks, limit)
	if err != nil {
		return nil, err
	}
	today, err := s.store.TopMealsOn(ctx, restaurantID, s.now().UTC().Format("2006-01-02"), limit)
	if err != nil {
		return nil, err
	}

	return &domain.RestaurantStats{
		RestaurantID:  restaurantID,
		Orders:        totals.Orders,
		Revenue:       decimal.New(totals.RevenueCents, -2).StringFixed(2),
		TopMeals:      meals,
		TopDrinks:     drinks,
		TopMealsToday: today,
	}, nil
}
