package storage

import (
	"context"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id SERIAL PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		cuisine TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		post_code TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		delivery_price NUMERIC(8,2) NOT NULL DEFAULT 0,
		avg_delivery_time INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS meals (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		tag TEXT NOT NULL DEFAULT '',
		ingredients TEXT[] NOT NULL DEFAULT '{}',
		price NUMERIC(8,2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS drinks (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(8,2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS menu_meals (
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		meal_id INTEGER NOT NULL REFERENCES meals(id) ON DELETE CASCADE,
		PRIMARY KEY (restaurant_id, meal_id)
	)`,
	`CREATE TABLE IF NOT EXISTS menu_drinks (
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		drink_id INTEGER NOT NULL REFERENCES drinks(id) ON DELETE CASCADE,
		PRIMARY KEY (restaurant_id, drink_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL,
		restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
		is_ordered BOOLEAN NOT NULL DEFAULT FALSE,
		delivery_address TEXT NOT NULL DEFAULT '',
		delivery_city TEXT NOT NULL DEFAULT '',
		delivery_country TEXT NOT NULL DEFAULT '',
		delivery_post_code TEXT NOT NULL DEFAULT '',
		delivery_phone TEXT NOT NULL DEFAULT '',
		total_price NUMERIC(10,2) NOT NULL,
		qr_code BYTEA,
		order_time TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS orders_user_time_idx ON orders (user_id, order_time DESC)`,
	`CREATE TABLE IF NOT EXISTS order_meals (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		meal_id INTEGER NOT NULL REFERENCES meals(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(8,2) NOT NULL,
		UNIQUE (order_id, meal_id)
	)`,
	`CREATE TABLE IF NOT EXISTS order_drinks (
		id SERIAL PRIMARY KEY,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		drink_id INTEGER NOT NULL REFERENCES drinks(id),
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(8,2) NOT NULL,
		UNIQUE (order_id, drink_id)
	)`,
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	for i, c := range stmt {
		if c == '\n' || c == '(' {
			return stmt[:i]
		}
	}
	return stmt
}
