package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"overcooked-delivery/order-svc/internal/domain"
)

// CreateOrder inserts the order header and all of its line items in a single
// transaction. Either everything is stored or nothing is.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, restaurant_id, is_ordered, delivery_address, delivery_city,
			delivery_country, delivery_post_code, delivery_phone, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, order_time`,
		order.UserID, order.RestaurantID, order.IsOrdered,
		order.Delivery.Address, order.Delivery.City, order.Delivery.Country,
		order.Delivery.PostCode, order.Delivery.Phone,
		order.TotalPrice.StringFixed(2),
	).Scan(&order.ID, &order.OrderTime)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, m := range order.Meals {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_meals (order_id, meal_id, quantity, unit_price) VALUES ($1, $2, $3, $4)",
			order.ID, m.MealID, m.Quantity, m.UnitPrice.StringFixed(2),
		); err != nil {
			return fmt.Errorf("insert order meal %d: %w", m.MealID, err)
		}
	}
	for _, d := range order.Drinks {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_drinks (order_id, drink_id, quantity, unit_price) VALUES ($1, $2, $3, $4)",
			order.ID, d.DrinkID, d.Quantity, d.UnitPrice.StringFixed(2),
		); err != nil {
			return fmt.Errorf("insert order drink %d: %w", d.DrinkID, err)
		}
	}

	return tx.Commit()
}

const orderColumns = `o.id, o.user_id, o.restaurant_id, r.name, o.is_ordered,
	o.delivery_address, o.delivery_city, o.delivery_country, o.delivery_post_code, o.delivery_phone,
	o.total_price, o.order_time`

func scanOrder(row rowScanner, order *domain.Order) error {
	return row.Scan(&order.ID, &order.UserID, &order.RestaurantID, &order.RestaurantName, &order.IsOrdered,
		&order.Delivery.Address, &order.Delivery.City, &order.Delivery.Country,
		&order.Delivery.PostCode, &order.Delivery.Phone,
		&order.TotalPrice, &order.OrderTime)
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int) (*domain.Order, error) {
	var order domain.Order
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1`, orderID)
	if err := scanOrder(row, &order); err != nil {
		return nil, notFound(err)
	}

	orders := []domain.Order{order}
	if err := r.loadLines(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ListOrdersByUser returns the user's orders newest first, with line items.
func (r *PostgresRepository) ListOrdersByUser(ctx context.Context, userID int) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.user_id = $1
		ORDER BY o.order_time DESC, o.id DESC`, userID)
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			rows.Close()
			return nil, err
		}
		orders = append(orders, order)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadLines(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// loadLines fills meal and drink lines for all orders with one query per line kind.
func (r *PostgresRepository) loadLines(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, len(orders))
	index := make(map[int]int, len(orders))
	for i := range orders {
		ids[i] = int64(orders[i].ID)
		index[orders[i].ID] = i
		orders[i].Meals = []domain.OrderMeal{}
		orders[i].Drinks = []domain.OrderDrink{}
	}

	mealRows, err := r.DB.QueryContext(ctx, `
		SELECT om.order_id, om.meal_id, m.name, om.quantity, om.unit_price
		FROM order_meals om
		JOIN meals m ON m.id = om.meal_id
		WHERE om.order_id = ANY($1)
		ORDER BY om.id`, pq.Array(ids))
	if err != nil {
		return err
	}
	for mealRows.Next() {
		var (
			orderID int
			m       domain.OrderMeal
		)
		if err := mealRows.Scan(&orderID, &m.MealID, &m.Name, &m.Quantity, &m.UnitPrice); err != nil {
			mealRows.Close()
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Meals = append(orders[i].Meals, m)
		}
	}
	mealRows.Close()
	if err := mealRows.Err(); err != nil {
		return err
	}

	drinkRows, err := r.DB.QueryContext(ctx, `
		SELECT od.order_id, od.drink_id, d.name, od.quantity, od.unit_price
		FROM order_drinks od
		JOIN drinks d ON d.id = od.drink_id
		WHERE od.order_id = ANY($1)
		ORDER BY od.id`, pq.Array(ids))
	if err != nil {
		return err
	}
	defer drinkRows.Close()
	for drinkRows.Next() {
		var (
			orderID int
			d       domain.OrderDrink
		)
		if err := drinkRows.Scan(&orderID, &d.DrinkID, &d.Name, &d.Quantity, &d.UnitPrice); err != nil {
			return err
		}
		if i, ok := index[orderID]; ok {
			orders[i].Drinks = append(orders[i].Drinks, d)
		}
	}
	return drinkRows.Err()
}

func (r *PostgresRepository) SaveQRCode(ctx context.Context, orderID int, qr []byte) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return nil
}

func (r *PostgresRepository) GetQRCode(ctx context.Context, orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRowContext(ctx, "SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qr)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}
	return qr, err
}
