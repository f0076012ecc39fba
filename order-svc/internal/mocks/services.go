package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"overcooked-delivery/order-svc/internal/domain"
)

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t testingT) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CatalogServiceInterface) ListRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx, filter)
	var r0 []domain.Restaurant
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Restaurant)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) GetRestaurant(ctx context.Context, ref string) (*domain.RestaurantDetail, error) {
	ret := _m.Called(ctx, ref)
	var r0 *domain.RestaurantDetail
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.RestaurantDetail)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) Menu(ctx context.Context, restaurantID int) (*domain.Menu, error) {
	ret := _m.Called(ctx, restaurantID)
	var r0 *domain.Menu
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Menu)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return _m.Called(ctx, rest).Error(0)
}

func (_m *CatalogServiceInterface) CreateMeal(ctx context.Context, meal *domain.Meal) error {
	return _m.Called(ctx, meal).Error(0)
}

func (_m *CatalogServiceInterface) CreateDrink(ctx context.Context, drink *domain.Drink) error {
	return _m.Called(ctx, drink).Error(0)
}

func (_m *CatalogServiceInterface) SetMenu(ctx context.Context, restaurantID int, mealIDs, drinkIDs []int) error {
	return _m.Called(ctx, restaurantID, mealIDs, drinkIDs).Error(0)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *OrderServiceInterface) Create(ctx context.Context, userID int, req *domain.OrderRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, userID, req)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(ctx context.Context, userID, orderID int) (*domain.Order, error) {
	ret := _m.Called(ctx, userID, orderID)
	var r0 *domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ListByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.Order
	if v := ret.Get(0); v != nil {
		r0 = v.([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) GetQRCode(ctx context.Context, userID, orderID int) ([]byte, error) {
	ret := _m.Called(ctx, userID, orderID)
	var r0 []byte
	if v := ret.Get(0); v != nil {
		r0 = v.([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRLink(orderID int) string {
	return _m.Called(orderID).String(0)
}
