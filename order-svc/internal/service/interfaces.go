package service

import (
	"context"

	"overcooked-delivery/order-svc/internal/domain"
)

type CatalogRepository interface {
	ListRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
	GetMenu(ctx context.Context, restaurantID int) (*domain.Menu, error)
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	CreateMeal(ctx context.Context, meal *domain.Meal) error
	CreateDrink(ctx context.Context, drink *domain.Drink) error
	SetMenu(ctx context.Context, restaurantID int, mealIDs, drinkIDs []int) error
}

// MenuCache returns (nil, nil) on a cache miss.
type MenuCache interface {
	Get(ctx context.Context, restaurantID int) (*domain.Menu, error)
	Set(ctx context.Context, menu *domain.Menu) error
	Invalidate(ctx context.Context, restaurantID int) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, orderID int) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID int) ([]domain.Order, error)
	SaveQRCode(ctx context.Context, orderID int, qr []byte) error
	GetQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, event domain.OrderCreatedEvent) error
}

type CatalogServiceInterface interface {
	ListRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error)
	GetRestaurant(ctx context.Context, ref string) (*domain.RestaurantDetail, error)
	Menu(ctx context.Context, restaurantID int) (*domain.Menu, error)
	CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error
	CreateMeal(ctx context.Context, meal *domain.Meal) error
	CreateDrink(ctx context.Context, drink *domain.Drink) error
	SetMenu(ctx context.Context, restaurantID int, mealIDs, drinkIDs []int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, userID int, req *domain.OrderRequest) (*domain.Order, error)
	Get(ctx context.Context, userID, orderID int) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int) ([]domain.Order, error)
	GetQRCode(ctx context.Context, userID, orderID int) ([]byte, error)
	QRLink(orderID int) string
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
)
