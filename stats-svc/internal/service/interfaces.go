package service

import (
	"context"

	"overcooked-delivery/stats-svc/internal/domain"
	"overcooked-delivery/stats-svc/internal/storage"
)

type StoreInterface interface {
	MarkProcessed(ctx context.Context, orderID int) (bool, error)
	UnmarkProcessed(ctx context.Context, orderID int) error
	RecordOrder(ctx context.Context, event domain.OrderCreatedEvent, revenueCents int64) error
	TopItems(ctx context.Context, restaurantID int, kind string, limit int) ([]domain.ItemStat, error)
	TopMealsOn(ctx context.Context, restaurantID int, day string, limit int) ([]domain.ItemStat, error)
	Totals(ctx context.Context, restaurantID int) (domain.Totals, error)
}

type StatsInterface interface {
	RestaurantStats(ctx context.Context, restaurantID, limit int) (*domain.RestaurantStats, error)
}

var (
	_ StoreInterface = (*storage.Store)(nil)
	_ StatsInterface = (*StatsService)(nil)
)
