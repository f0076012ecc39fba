package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID              int             `json:"id"`
	Slug            string          `json:"slug"`
	Name            string          `json:"name"`
	Cuisine         string          `json:"cuisine"`
	City            string          `json:"city"`
	Country         string          `json:"country"`
	Address         string          `json:"address"`
	PostCode        string          `json:"post_code"`
	Phone           string          `json:"phone"`
	DeliveryPrice   decimal.Decimal `json:"delivery_price"`
	AvgDeliveryTime int             `json:"avg_delivery_time"`
	CreatedAt       time.Time       `json:"created_at"`
}

type RestaurantFilter struct {
	Cuisine string
	Name    string
	City    string
}

type Meal struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Tag         string          `json:"tag"`
	Ingredients []string        `json:"ingredients"`
	Price       decimal.Decimal `json:"price"`
}

type Drink struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Menu is the snapshot of what a restaurant sells at the time it was read.
type Menu struct {
	RestaurantID  int             `json:"restaurant_id"`
	DeliveryPrice decimal.Decimal `json:"delivery_price"`
	Meals         []Meal          `json:"meals"`
	Drinks        []Drink         `json:"drinks"`
}

// LineRequest is one requested {item, quantity} pair before aggregation.
type LineRequest struct {
	ItemID   int
	Quantity int
}

type Delivery struct {
	Address  string `json:"delivery_address"`
	City     string `json:"delivery_city"`
	Country  string `json:"delivery_country"`
	PostCode string `json:"delivery_post_code"`
	Phone    string `json:"delivery_phone"`
}

type OrderRequest struct {
	RestaurantID int
	Meals        []LineRequest
	Drinks       []LineRequest
	Delivery     Delivery
}

type Order struct {
	ID             int
	UserID         int
	RestaurantID   int
	RestaurantName string
	IsOrdered      bool
	Delivery       Delivery
	TotalPrice     decimal.Decimal
	OrderTime      time.Time
	Meals          []OrderMeal
	Drinks         []OrderDrink
}

type OrderMeal struct {
	MealID    int
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type OrderDrink struct {
	DrinkID   int
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type EventLine struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

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

const EventOrderCreated = "order_created"

type RestaurantDetail struct {
	Restaurant
	Menu Menu `json:"menu"`
}
