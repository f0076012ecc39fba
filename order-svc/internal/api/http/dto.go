package httpapi

import (
	"time"

	"overcooked-delivery/order-svc/internal/domain"
)

type mealLineRequest struct {
	Meal     int `json:"meal"`
	Quantity int `json:"quantity"`
}

type drinkLineRequest struct {
	Drink    int `json:"drink"`
	Quantity int `json:"quantity"`
}

type createOrderRequest struct {
	Restaurant int                `json:"restaurant"`
	Meals      []mealLineRequest  `json:"meals"`
	Drinks     []drinkLineRequest `json:"drinks"`
	domain.Delivery
}

func (req createOrderRequest) toDomain() *domain.OrderRequest {
	out := &domain.OrderRequest{
		RestaurantID: req.Restaurant,
		Meals:        make([]domain.LineRequest, 0, len(req.Meals)),
		Drinks:       make([]domain.LineRequest, 0, len(req.Drinks)),
		Delivery:     req.Delivery,
	}
	for _, m := range req.Meals {
		out.Meals = append(out.Meals, domain.LineRequest{ItemID: m.Meal, Quantity: m.Quantity})
	}
	for _, d := range req.Drinks {
		out.Drinks = append(out.Drinks, domain.LineRequest{ItemID: d.Drink, Quantity: d.Quantity})
	}
	return out
}

type mealLineResponse struct {
	Meal      int    `json:"meal"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type drinkLineResponse struct {
	Drink     int    `json:"drink"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// orderResponse renders money as strings with exactly two fractional digits.
type orderResponse struct {
	ID             int    `json:"id"`
	User           int    `json:"user"`
	Restaurant     int    `json:"restaurant"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	IsOrdered      bool   `json:"is_ordered"`
	domain.Delivery
	TotalPrice string              `json:"total_price"`
	OrderTime  time.Time           `json:"order_time"`
	QRCode     string              `json:"qr_code,omitempty"`
	Meals      []mealLineResponse  `json:"meals"`
	Drinks     []drinkLineResponse `json:"drinks"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	resp := orderResponse{
		ID:             order.ID,
		User:           order.UserID,
		Restaurant:     order.RestaurantID,
		RestaurantName: order.RestaurantName,
		IsOrdered:      order.IsOrdered,
		Delivery:       order.Delivery,
		TotalPrice:     order.TotalPrice.StringFixed(2),
		OrderTime:      order.OrderTime,
		Meals:          make([]mealLineResponse, 0, len(order.Meals)),
		Drinks:         make([]drinkLineResponse, 0, len(order.Drinks)),
	}
	for _, m := range order.Meals {
		resp.Meals = append(resp.Meals, mealLineResponse{
			Meal:      m.MealID,
			Name:      m.Name,
			Quantity:  m.Quantity,
			UnitPrice: m.UnitPrice.StringFixed(2),
		})
	}
	for _, d := range order.Drinks {
		resp.Drinks = append(resp.Drinks, drinkLineResponse{
			Drink:     d.DrinkID,
			Name:      d.Name,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice.StringFixed(2),
		})
	}
	return resp
}

type setMenuRequest struct {
	Meals  []int `json:"meals"`
	Drinks []int `json:"drinks"`
}

type errorDetail struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}
