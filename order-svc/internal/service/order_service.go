package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"overcooked-delivery/order-svc/internal/domain"
)

// MenuSource is the part of the catalog the order flow depends on.
type MenuSource interface {
	Menu(ctx context.Context, restaurantID int) (*domain.Menu, error)
}

type OrderService struct {
	catalog   MenuSource
	repo      OrderRepository
	publisher OrderPublisher
	qrEncoder QRGenerator
}

// NewOrderService accepts nil publisher and qr generator; the matching
// post-commit step is then skipped.
func NewOrderService(catalog MenuSource, repo OrderRepository, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		catalog:   catalog,
		repo:      repo,
		publisher: publisher,
		qrEncoder: qr,
	}
}

// Create validates the request against the restaurant menu, aggregates
// repeated items, prices the order and stores it with its line items in one
// transaction. The total is computed here once and never recomputed on read.
func (s *OrderService) Create(ctx context.Context, userID int, req *domain.OrderRequest) (*domain.Order, error) {
	menu, err := s.catalog.Menu(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, restaurantNotFoundError(req.RestaurantID)
		}
		return nil, fmt.Errorf("%w: load menu: %w", ErrOrderCreation, err)
	}

	meals, drinks, err := ValidateAndAggregate(menu, req.Meals, req.Drinks)
	if err != nil {
		return nil, err
	}

	orderMeals, orderDrinks := PriceLines(menu, meals, drinks)
	total := ComputeTotal(menu.DeliveryPrice, orderMeals, orderDrinks)
	if err := CheckTotal(total); err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		IsOrdered:    true,
		Delivery:     req.Delivery,
		TotalPrice:   total,
		Meals:        orderMeals,
		Drinks:       orderDrinks,
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOrderCreation, err)
	}

	zerolog.Ctx(ctx).Info().
		Int("order_id", order.ID).
		Int("restaurant_id", order.RestaurantID).
		Str("total_price", order.TotalPrice.StringFixed(2)).
		Msg("order created")

	s.storeQRCode(ctx, order.ID)
	s.publishCreated(ctx, order)

	return order, nil
}

func (s *OrderService) storeQRCode(ctx context.Context, orderID int) {
	if s.qrEncoder == nil {
		return
	}
	qr, err := s.qrEncoder.Generate(orderID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int("order_id", orderID).Msg("failed to generate QR code")
		return
	}
	if err := s.repo.SaveQRCode(ctx, orderID, qr); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int("order_id", orderID).Msg("failed to store QR code")
	}
}

func (s *OrderService) publishCreated(ctx context.Context, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderCreatedEvent{
		Type:         domain.EventOrderCreated,
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		TotalPrice:   order.TotalPrice.StringFixed(2),
		Meals:        make([]domain.EventLine, 0, len(order.Meals)),
		Drinks:       make([]domain.EventLine, 0, len(order.Drinks)),
		Timestamp:    time.Now().UTC(),
	}
	for _, m := range order.Meals {
		event.Meals = append(event.Meals, domain.EventLine{ItemID: m.MealID, Quantity: m.Quantity})
	}
	for _, d := range order.Drinks {
		event.Drinks = append(event.Drinks, domain.EventLine{ItemID: d.DrinkID, Quantity: d.Quantity})
	}

	if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Int("order_id", order.ID).Msg("failed to publish order event")
	}
}

// Get returns the order only when it belongs to userID.
func (s *OrderService) Get(ctx context.Context, userID, orderID int) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	return s.repo.ListOrdersByUser(ctx, userID)
}

// GetQRCode regenerates and stores the image when the order has none yet.
func (s *OrderService) GetQRCode(ctx context.Context, userID, orderID int) ([]byte, error) {
	if _, err := s.Get(ctx, userID, orderID); err != nil {
		return nil, err
	}

	qr, err := s.repo.GetQRCode(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int("order_id", orderID).Msg("failed to regenerate QR code")
			return qr, nil
		}
		if err := s.repo.SaveQRCode(ctx, orderID, regenerated); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int("order_id", orderID).Msg("failed to store QR code")
		}
		return regenerated, nil
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
