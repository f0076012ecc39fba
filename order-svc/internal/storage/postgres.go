package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"overcooked-delivery/order-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const restaurantColumns = `id, slug, name, cuisine, city, country, address, post_code, phone,
	delivery_price, avg_delivery_time, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner, rest *domain.Restaurant) error {
	return row.Scan(&rest.ID, &rest.Slug, &rest.Name, &rest.Cuisine, &rest.City, &rest.Country,
		&rest.Address, &rest.PostCode, &rest.Phone, &rest.DeliveryPrice, &rest.AvgDeliveryTime, &rest.CreatedAt)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context, filter domain.RestaurantFilter) ([]domain.Restaurant, error) {
	var (
		conditions []string
		args       []any
	)
	addCondition := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conditions = append(conditions, column+" = $"+strconv.Itoa(len(args)))
	}
	addCondition("cuisine", filter.Cuisine)
	addCondition("name", filter.Name)
	addCondition("city", filter.City)

	query := "SELECT " + restaurantColumns + " FROM restaurants"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := scanRestaurant(rows, &rest); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	row := r.DB.QueryRowContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants WHERE id = $1", id)
	if err := scanRestaurant(row, &rest); err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	row := r.DB.QueryRowContext(ctx, "SELECT "+restaurantColumns+" FROM restaurants WHERE slug = $1", slug)
	if err := scanRestaurant(row, &rest); err != nil {
		return nil, notFound(err)
	}
	return &rest, nil
}

// GetMenu reads the delivery price and the menu items inside one read-only
// repeatable-read transaction so the snapshot is internally consistent.
func (r *PostgresRepository) GetMenu(ctx context.Context, restaurantID int) (*domain.Menu, error) {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	menu := &domain.Menu{RestaurantID: restaurantID, Meals: []domain.Meal{}, Drinks: []domain.Drink{}}
	if err := tx.QueryRowContext(ctx,
		"SELECT delivery_price FROM restaurants WHERE id = $1", restaurantID,
	).Scan(&menu.DeliveryPrice); err != nil {
		return nil, notFound(err)
	}

	mealRows, err := tx.QueryContext(ctx, `
		SELECT m.id, m.name, m.tag, m.ingredients, m.price
		FROM menu_meals mm
		JOIN meals m ON m.id = mm.meal_id
		WHERE mm.restaurant_id = $1
		ORDER BY m.id`, restaurantID)
	if err != nil {
		return nil, err
	}
	for mealRows.Next() {
		var meal domain.Meal
		if err := mealRows.Scan(&meal.ID, &meal.Name, &meal.Tag, pq.Array(&meal.Ingredients), &meal.Price); err != nil {
			mealRows.Close()
			return nil, err
		}
		menu.Meals = append(menu.Meals, meal)
	}
	mealRows.Close()
	if err := mealRows.Err(); err != nil {
		return nil, err
	}

	drinkRows, err := tx.QueryContext(ctx, `
		SELECT d.id, d.name, d.price
		FROM menu_drinks md
		JOIN drinks d ON d.id = md.drink_id
		WHERE md.restaurant_id = $1
		ORDER BY d.id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer drinkRows.Close()
	for drinkRows.Next() {
		var drink domain.Drink
		if err := drinkRows.Scan(&drink.ID, &drink.Name, &drink.Price); err != nil {
			return nil, err
		}
		menu.Drinks = append(menu.Drinks, drink)
	}
	if err := drinkRows.Err(); err != nil {
		return nil, err
	}

	return menu, tx.Commit()
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (slug, name, cuisine, city, country, address, post_code, phone, delivery_price, avg_delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		rest.Slug, rest.Name, rest.Cuisine, rest.City, rest.Country, rest.Address, rest.PostCode, rest.Phone,
		rest.DeliveryPrice.StringFixed(2), rest.AvgDeliveryTime,
	).Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) CreateMeal(ctx context.Context, meal *domain.Meal) error {
	if meal.Ingredients == nil {
		meal.Ingredients = []string{}
	}
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO meals (name, tag, ingredients, price) VALUES ($1, $2, $3, $4) RETURNING id",
		meal.Name, meal.Tag, pq.Array(meal.Ingredients), meal.Price.StringFixed(2),
	).Scan(&meal.ID)
}

func (r *PostgresRepository) CreateDrink(ctx context.Context, drink *domain.Drink) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO drinks (name, price) VALUES ($1, $2) RETURNING id",
		drink.Name, drink.Price.StringFixed(2),
	).Scan(&drink.ID)
}

// SetMenu replaces the menu of a restaurant. Unknown meal or drink ids
// surface as domain.ErrNotFound.
func (r *PostgresRepository) SetMenu(ctx context.Context, restaurantID int, mealIDs, drinkIDs []int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM restaurants WHERE id = $1)", restaurantID,
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("restaurant %d: %w", restaurantID, domain.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_meals WHERE restaurant_id = $1", restaurantID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM menu_drinks WHERE restaurant_id = $1", restaurantID); err != nil {
		return err
	}

	for _, id := range mealIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO menu_meals (restaurant_id, meal_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			restaurantID, id); err != nil {
			return unknownReference("meal", id, err)
		}
	}
	for _, id := range drinkIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO menu_drinks (restaurant_id, drink_id) VALUES ($1, $2) ON CONFLICT DO NOTHING",
			restaurantID, id); err != nil {
			return unknownReference("drink", id, err)
		}
	}

	return tx.Commit()
}

func unknownReference(kind string, id int, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
		return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
	}
	return err
}
