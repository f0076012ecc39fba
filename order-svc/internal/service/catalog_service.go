package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/rs/zerolog"

	"overcooked-delivery/order-svc/internal/domain"
)

var ErrInvalidCatalogItem = errors.New("invalid catalog item")

type CatalogService struct {
	repo  CatalogRepository
	cache MenuCache
}

// NewCatalogService accepts a nil cache, in which case every menu read hits the repository.
func NewCatalogService(repo CatalogRepository, cache MenuCache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) ListRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	return s.repo.ListRestaurants(ctx, filter)
}

// GetRestaurant resolves ref as a numeric id first and as a slug otherwise.
func (s *CatalogService) GetRestaurant(ctx context.Context, ref string) (*domain.RestaurantDetail, error) {
	var (
		rest *domain.Restaurant
		err  error
	)
	if id, convErr := strconv.Atoi(ref); convErr == nil {
		rest, err = s.repo.GetRestaurant(ctx, id)
	} else {
		rest, err = s.repo.GetRestaurantBySlug(ctx, ref)
	}
	if err != nil {
		return nil, err
	}

	menu, err := s.Menu(ctx, rest.ID)
	if err != nil {
		return nil, err
	}
	return &domain.RestaurantDetail{Restaurant: *rest, Menu: *menu}, nil
}

func (s *CatalogService) Menu(ctx context.Context, restaurantID int) (*domain.Menu, error) {
	logger := zerolog.Ctx(ctx)

	if s.cache != nil {
		menu, err := s.cache.Get(ctx, restaurantID)
		if err != nil {
			logger.Warn().Err(err).Int("restaurant_id", restaurantID).Msg("menu cache read failed")
		} else if menu != nil {
			return menu, nil
		}
	}

	menu, err := s.repo.GetMenu(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, menu); err != nil {
			logger.Warn().Err(err).Int("restaurant_id", restaurantID).Msg("menu cache write failed")
		}
	}
	return menu, nil
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	if strings.TrimSpace(rest.Name) == "" {
		return invalidCatalogItem("name", "name is required")
	}
	if rest.DeliveryPrice.IsNegative() {
		return invalidCatalogItem("delivery_price", "delivery price cannot be negative")
	}
	if rest.Slug == "" {
		rest.Slug = Slugify(rest.Name)
	}
	rest.DeliveryPrice = rest.DeliveryPrice.Round(2)
	return s.repo.CreateRestaurant(ctx, rest)
}

func (s *CatalogService) CreateMeal(ctx context.Context, meal *domain.Meal) error {
	if strings.TrimSpace(meal.Name) == "" {
		return invalidCatalogItem("name", "name is required")
	}
	if meal.Price.IsNegative() {
		return invalidCatalogItem("price", "price cannot be negative")
	}
	meal.Price = meal.Price.Round(2)
	return s.repo.CreateMeal(ctx, meal)
}

func (s *CatalogService) CreateDrink(ctx context.Context, drink *domain.Drink) error {
	if strings.TrimSpace(drink.Name) == "" {
		return invalidCatalogItem("name", "name is required")
	}
	if drink.Price.IsNegative() {
		return invalidCatalogItem("price", "price cannot be negative")
	}
	drink.Price = drink.Price.Round(2)
	return s.repo.CreateDrink(ctx, drink)
}

// SetMenu replaces the restaurant's menu and drops the cached snapshot.
func (s *CatalogService) SetMenu(ctx context.Context, restaurantID int, mealIDs, drinkIDs []int) error {
	if err := s.repo.SetMenu(ctx, restaurantID, mealIDs, drinkIDs); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, restaurantID); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Int("restaurant_id", restaurantID).Msg("menu cache invalidation failed")
		}
	}
	return nil
}

func invalidCatalogItem(field, message string) error {
	return &ValidationError{Field: field, Code: "invalid", Message: message, Err: ErrInvalidCatalogItem}
}

// Slugify lowercases name and joins its alphanumeric runs with dashes.
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "restaurant"
	}
	return b.String()
}
