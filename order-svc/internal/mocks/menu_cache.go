package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"overcooked-delivery/order-svc/internal/domain"
)

type MenuCache struct {
	mock.Mock
}

func NewMenuCache(t testingT) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuCache) Get(ctx context.Context, restaurantID int) (*domain.Menu, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *MenuCache) Set(ctx context.Context, menu *domain.Menu) error {
	return _m.Called(ctx, menu).Error(0)
}

func (_m *MenuCache) Invalidate(ctx context.Context, restaurantID int) error {
	return _m.Called(ctx, restaurantID).Error(0)
}

type MenuSource struct {
	mock.Mock
}

func NewMenuSource(t testingT) *MenuSource {
	m := &MenuSource{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *MenuSource) Menu(ctx context.Context, restaurantID int) (*domain.Menu, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Menu)
	}
	return r0, ret.Error(1)
}
