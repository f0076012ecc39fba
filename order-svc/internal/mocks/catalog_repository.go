package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"overcooked-delivery/order-svc/internal/domain"
)

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t testingT) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CatalogRepository) ListRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx, filter)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, slug)
	var r0 *domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) GetMenu(ctx context.Context, restaurantID int) (*domain.Menu, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return _m.Called(ctx, rest).Error(0)
}

func (_m *CatalogRepository) CreateMeal(ctx context.Context, meal *domain.Meal) error {
	return _m.Called(ctx, meal).Error(0)
}

func (_m *CatalogRepository) CreateDrink(ctx context.Context, drink *domain.Drink) error {
	return _m.Called(ctx, drink).Error(0)
}

func (_m *CatalogRepository) SetMenu(ctx context.Context, restaurantID int, mealIDs, drinkIDs []int) error {
	return _m.Called(ctx, restaurantID, mealIDs, drinkIDs).Error(0)
}
