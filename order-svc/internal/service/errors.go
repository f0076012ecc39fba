package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder         = errors.New("cannot submit an empty order")
	ErrMenuMismatch       = errors.New("item is not on the restaurant menu")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrTotalTooLarge      = errors.New("order total exceeds the allowed maximum")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderCreation      = errors.New("failed to create order")
)

const (
	FieldMeal       = "meal"
	FieldDrink      = "drink"
	FieldRestaurant = "restaurant"
	FieldOrder      = "order"
)

// ValidationError is a client-input error scoped to one request field.
// It unwraps to one of the sentinel errors above.
type ValidationError struct {
	Field   string
	Code    string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func emptyOrderError() error {
	return &ValidationError{
		Field:   FieldOrder,
		Code:    "empty_order",
		Message: ErrEmptyOrder.Error(),
		Err:     ErrEmptyOrder,
	}
}

func menuMismatchError(field string, itemID, restaurantID int) error {
	return &ValidationError{
		Field:   field,
		Code:    "menu_mismatch",
		Message: fmt.Sprintf("invalid %s %d: not on the menu of restaurant %d", field, itemID, restaurantID),
		Err:     ErrMenuMismatch,
	}
}

func invalidQuantityError(field string, itemID int, quantity int64) error {
	return &ValidationError{
		Field:   field,
		Code:    "invalid_quantity",
		Message: fmt.Sprintf("invalid quantity %d for %s %d", quantity, field, itemID),
		Err:     ErrInvalidQuantity,
	}
}

func totalTooLargeError(total decimal.Decimal) error {
	return &ValidationError{
		Field:   FieldOrder,
		Code:    "total_too_large",
		Message: fmt.Sprintf("order total %s exceeds %s", total.StringFixed(2), MaxOrderTotal.StringFixed(2)),
		Err:     ErrTotalTooLarge,
	}
}

func restaurantNotFoundError(restaurantID int) error {
	return &ValidationError{
		Field:   FieldRestaurant,
		Code:    "not_found",
		Message: fmt.Sprintf("restaurant %d does not exist", restaurantID),
		Err:     ErrRestaurantNotFound,
	}
}
