package service

import (
	"math"

	"github.com/shopspring/decimal"

	"overcooked-delivery/order-svc/internal/domain"
)

// MaxLineQuantity bounds a single entry and the summed quantity of one item.
const MaxLineQuantity = math.MaxInt32

// MaxOrderTotal is the largest total the orders table can hold.
var MaxOrderTotal = decimal.RequireFromString("99999999.99")

// ValidateAndAggregate checks every requested meal and drink against the menu
// and collapses repeated items into one line with the summed quantity.
// Output keeps the order in which each item was first requested.
func ValidateAndAggregate(menu *domain.Menu, meals, drinks []domain.LineRequest) ([]domain.LineRequest, []domain.LineRequest, error) {
	if len(meals)+len(drinks) == 0 {
		return nil, nil, emptyOrderError()
	}

	mealIDs := make(map[int]struct{}, len(menu.Meals))
	for _, meal := range menu.Meals {
		mealIDs[meal.ID] = struct{}{}
	}
	drinkIDs := make(map[int]struct{}, len(menu.Drinks))
	for _, drink := range menu.Drinks {
		drinkIDs[drink.ID] = struct{}{}
	}

	aggregatedMeals, err := validateLines(FieldMeal, menu.RestaurantID, meals, mealIDs)
	if err != nil {
		return nil, nil, err
	}
	aggregatedDrinks, err := validateLines(FieldDrink, menu.RestaurantID, drinks, drinkIDs)
	if err != nil {
		return nil, nil, err
	}
	return aggregatedMeals, aggregatedDrinks, nil
}

func validateLines(field string, restaurantID int, lines []domain.LineRequest, onMenu map[int]struct{}) ([]domain.LineRequest, error) {
	summed := make(map[int]int64, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 || line.Quantity > MaxLineQuantity {
			return nil, invalidQuantityError(field, line.ItemID, int64(line.Quantity))
		}
		if _, ok := onMenu[line.ItemID]; !ok {
			return nil, menuMismatchError(field, line.ItemID, restaurantID)
		}
		summed[line.ItemID] += int64(line.Quantity)
		if summed[line.ItemID] > MaxLineQuantity {
			return nil, invalidQuantityError(field, line.ItemID, summed[line.ItemID])
		}
	}
	return Aggregate(lines), nil
}

// Aggregate sums quantities per item id in a single pass.
func Aggregate(lines []domain.LineRequest) []domain.LineRequest {
	position := make(map[int]int, len(lines))
	aggregated := make([]domain.LineRequest, 0, len(lines))
	for _, line := range lines {
		if i, seen := position[line.ItemID]; seen {
			aggregated[i].Quantity += line.Quantity
			continue
		}
		position[line.ItemID] = len(aggregated)
		aggregated = append(aggregated, line)
	}
	return aggregated
}

// PriceLines attaches catalog names and unit prices to aggregated lines.
// Lines must already be validated against the same menu.
func PriceLines(menu *domain.Menu, meals, drinks []domain.LineRequest) ([]domain.OrderMeal, []domain.OrderDrink) {
	mealByID := make(map[int]domain.Meal, len(menu.Meals))
	for _, meal := range menu.Meals {
		mealByID[meal.ID] = meal
	}
	drinkByID := make(map[int]domain.Drink, len(menu.Drinks))
	for _, drink := range menu.Drinks {
		drinkByID[drink.ID] = drink
	}

	orderMeals := make([]domain.OrderMeal, 0, len(meals))
	for _, line := range meals {
		meal := mealByID[line.ItemID]
		orderMeals = append(orderMeals, domain.OrderMeal{
			MealID:    line.ItemID,
			Name:      meal.Name,
			Quantity:  line.Quantity,
			UnitPrice: meal.Price,
		})
	}

	orderDrinks := make([]domain.OrderDrink, 0, len(drinks))
	for _, line := range drinks {
		drink := drinkByID[line.ItemID]
		orderDrinks = append(orderDrinks, domain.OrderDrink{
			DrinkID:   line.ItemID,
			Name:      drink.Name,
			Quantity:  line.Quantity,
			UnitPrice: drink.Price,
		})
	}
	return orderMeals, orderDrinks
}

// ComputeTotal returns deliveryFee + Σ(price × qty) over all lines, rounded to cents.
func ComputeTotal(deliveryFee decimal.Decimal, meals []domain.OrderMeal, drinks []domain.OrderDrink) decimal.Decimal {
	total := deliveryFee
	for _, line := range meals {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	for _, line := range drinks {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total.Round(2)
}

// CheckTotal rejects totals that do not fit the stored price column.
func CheckTotal(total decimal.Decimal) error {
	if total.GreaterThan(MaxOrderTotal) {
		return totalTooLargeError(total)
	}
	return nil
}
