package domain

import "time"

const EventOrderCreated = "order_created"

type EventLine struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// OrderCreatedEvent mirrors the payload order-svc publishes after a commit.
type OrderCreatedEvent struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	UserID       int         `json:"user_id"`
	RestaurantID int         `json:"restaurant_id"`
	TotalPrice   string      `json:"total_price"`
	Meals        []EventLine `json:"meals"`
	Drinks       []EventLine `json:"drinks"`
	Timestamp    time.Time   `json:"timestamp"`
}

type ItemStat struct {
	ItemID   int   `json:"item_id"`
	Quantity int64 `json:"quantity"`
}

type Totals struct {
	Orders       int64
	RevenueCents int64
}

type RestaurantStats struct {
	RestaurantID  int        `json:"restaurant_id"`
	Orders        int64      `json:"orders"`
	Revenue       string     `json:"revenue"`
	TopMeals      []ItemStat `json:"top_meals"`
	TopDrinks     []ItemStat `json:"top_drinks"`
	TopMealsToday []ItemStat `json:"top_meals_today"`
}
