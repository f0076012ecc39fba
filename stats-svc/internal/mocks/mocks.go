// Package mocks holds testify mocks for the stats-svc service interfaces.
package mocks

import (
	"context"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"

	"overcooked-delivery/stats-svc/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type StoreInterface struct {
	mock.Mock
}

func NewStoreInterface(t testingT) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StoreInterface) MarkProcessed(ctx context.Context, orderID int) (bool, error) {
	ret := _m.Called(ctx, orderID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *StoreInterface) UnmarkProcessed(ctx context.Context, orderID int) error {
	return _m.Called(ctx, orderID).Error(0)
}

func (_m *StoreInterface) RecordOrder(ctx context.Context, event domain.OrderCreatedEvent, revenueCents int64) error {
	return _m.Called(ctx, event, revenueCents).Error(0)
}

func (_m *StoreInterface) TopItems(ctx context.Context, restaurantID int, kind string, limit int) ([]domain.ItemStat, error) {
	ret := _m.Called(ctx, restaurantID, kind, limit)
	var r0 []domain.ItemStat
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.ItemStat)
	}
	return r0, ret.Error(1)
}

func (_m *StoreInterface) TopMealsOn(ctx context.Context, restaurantID int, day string, limit int) ([]domain.ItemStat, error) {
	ret := _m.Called(ctx, restaurantID, day, limit)
	var r0 []domain.ItemStat
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.ItemStat)
	}
	return r0, ret.Error(1)
}

func (_m *StoreInterface) Totals(ctx context.Context, restaurantID int) (domain.Totals, error) {
	ret := _m.Called(ctx, restaurantID)
	return ret.Get(0).(domain.Totals), ret.Error(1)
}

type StatsInterface struct {
	mock.Mock
}

func NewStatsInterface(t testingT) *StatsInterface {
	m := &StatsInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *StatsInterface) RestaurantStats(ctx context.Context, restaurantID, limit int) (*domain.RestaurantStats, error) {
	ret := _m.Called(ctx, restaurantID, limit)
	var r0 *domain.RestaurantStats
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RestaurantStats)
	}
	return r0, ret.Error(1)
}

type MessageReader struct {
	mock.Mock
}

func NewMessageReader(t testingT) *MessageReader {
	m := &MessageReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MessageReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).(kafka.Message), ret.Error(1)
}
