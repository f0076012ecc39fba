package tests

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overcooked-delivery/order-svc/internal/domain"
	"overcooked-delivery/order-svc/internal/service"
)

func testMenu() *domain.Menu {
	return &domain.Menu{
		RestaurantID:  1,
		DeliveryPrice: decimal.RequireFromString("12.00"),
		Meals: []domain.Meal{
			{ID: 1, Name: "Burger", Price: decimal.RequireFromString("10.00")},
			{ID: 2, Name: "Fries", Price: decimal.RequireFromString("3.35")},
		},
		Drinks: []domain.Drink{
			{ID: 10, Name: "Lemonade", Price: decimal.RequireFromString("2.50")},
		},
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		input []domain.LineRequest
		want  []domain.LineRequest
	}{
		{
			name:  "empty",
			input: nil,
			want:  []domain.LineRequest{},
		},
		{
			name:  "distinct items kept in order",
			input: []domain.LineRequest{{ItemID: 2, Quantity: 1}, {ItemID: 1, Quantity: 4}},
			want:  []domain.LineRequest{{ItemID: 2, Quantity: 1}, {ItemID: 1, Quantity: 4}},
		},
		{
			name:  "repeated item summed at first position",
			input: []domain.LineRequest{{ItemID: 1, Quantity: 3}, {ItemID: 2, Quantity: 1}, {ItemID: 1, Quantity: 2}},
			want:  []domain.LineRequest{{ItemID: 1, Quantity: 5}, {ItemID: 2, Quantity: 1}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.Aggregate(testCase.input))
		})
	}
}

func TestValidateAndAggregate(t *testing.T) {
	tests := []struct {
		name      string
		meals     []domain.LineRequest
		drinks    []domain.LineRequest
		wantErr   error
		wantField string
		wantMeals []domain.LineRequest
	}{
		{
			name:      "empty order",
			wantErr:   service.ErrEmptyOrder,
			wantField: service.FieldOrder,
		},
		{
			name:      "drinks only is allowed",
			drinks:    []domain.LineRequest{{ItemID: 10, Quantity: 2}},
			wantMeals: []domain.LineRequest{},
		},
		{
			name:      "meal not on menu rejects whole order",
			meals:     []domain.LineRequest{{ItemID: 1, Quantity: 1}, {ItemID: 99, Quantity: 1}},
			wantErr:   service.ErrMenuMismatch,
			wantField: service.FieldMeal,
		},
		{
			name:      "drink not on menu",
			meals:     []domain.LineRequest{{ItemID: 1, Quantity: 1}},
			drinks:    []domain.LineRequest{{ItemID: 1, Quantity: 1}},
			wantErr:   service.ErrMenuMismatch,
			wantField: service.FieldDrink,
		},
		{
			name:      "zero quantity",
			meals:     []domain.LineRequest{{ItemID: 1, Quantity: 0}},
			wantErr:   service.ErrInvalidQuantity,
			wantField: service.FieldMeal,
		},
		{
			name:      "negative quantity",
			drinks:    []domain.LineRequest{{ItemID: 10, Quantity: -1}},
			wantErr:   service.ErrInvalidQuantity,
			wantField: service.FieldDrink,
		},
		{
			name:      "quantity above line limit",
			meals:     []domain.LineRequest{{ItemID: 1, Quantity: service.MaxLineQuantity + 1}},
			wantErr:   service.ErrInvalidQuantity,
			wantField: service.FieldMeal,
		},
		{
			name:      "repeated entries summing past line limit",
			meals:     []domain.LineRequest{{ItemID: 1, Quantity: service.MaxLineQuantity}, {ItemID: 1, Quantity: 1}},
			wantErr:   service.ErrInvalidQuantity,
			wantField: service.FieldMeal,
		},
		{
			name:      "repeated drinks summing past line limit",
			drinks:    []domain.LineRequest{{ItemID: 10, Quantity: service.MaxLineQuantity - 5}, {ItemID: 10, Quantity: 6}},
			wantErr:   service.ErrInvalidQuantity,
			wantField: service.FieldDrink,
		},
		{
			name:      "repeated entries summing to line limit",
			meals:     []domain.LineRequest{{ItemID: 1, Quantity: service.MaxLineQuantity - 1}, {ItemID: 1, Quantity: 1}},
			wantMeals: []domain.LineRequest{{ItemID: 1, Quantity: service.MaxLineQuantity}},
		},
		{
			name:      "duplicates merged",
			meals:     []domain.LineRequest{{ItemID: 1, Quantity: 3}, {ItemID: 1, Quantity: 2}},
			wantMeals: []domain.LineRequest{{ItemID: 1, Quantity: 5}},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			meals, _, err := service.ValidateAndAggregate(testMenu(), testCase.meals, testCase.drinks)

			if testCase.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, testCase.wantErr))
				var validation *service.ValidationError
				require.True(t, errors.As(err, &validation))
				assert.Equal(t, testCase.wantField, validation.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantMeals, meals)
		})
	}
}

func TestComputeTotal_ScenarioFromCheckout(t *testing.T) {
	menu := testMenu()
	meals, drinks, err := service.ValidateAndAggregate(menu,
		[]domain.LineRequest{{ItemID: 1, Quantity: 3}, {ItemID: 1, Quantity: 2}},
		[]domain.LineRequest{{ItemID: 10, Quantity: 1}},
	)
	require.NoError(t, err)

	orderMeals, orderDrinks := service.PriceLines(menu, meals, drinks)
	require.Len(t, orderMeals, 1)
	require.Len(t, orderDrinks, 1)
	assert.Equal(t, 5, orderMeals[0].Quantity)
	assert.Equal(t, "Burger", orderMeals[0].Name)
	assert.Equal(t, 1, orderDrinks[0].Quantity)

	total := service.ComputeTotal(menu.DeliveryPrice, orderMeals, orderDrinks)
	assert.Equal(t, "64.50", total.StringFixed(2))
}

func TestComputeTotal_NoFloatDrift(t *testing.T) {
	meals := []domain.OrderMeal{{MealID: 2, Quantity: 3, UnitPrice: decimal.RequireFromString("3.35")}}
	drinks := []domain.OrderDrink{{DrinkID: 10, Quantity: 7, UnitPrice: decimal.RequireFromString("0.10")}}

	total := service.ComputeTotal(decimal.RequireFromString("0.20"), meals, drinks)

	assert.True(t, total.Equal(decimal.RequireFromString("10.95")), "got %s", total)
}

func TestCheckTotal(t *testing.T) {
	tests := []struct {
		name    string
		total   string
		wantErr bool
	}{
		{name: "typical order", total: "64.50"},
		{name: "largest storable total", total: "99999999.99"},
		{name: "one cent over", total: "100000000.00", wantErr: true},
		{name: "line limit at menu price", total: "21474836482.00", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			err := service.CheckTotal(decimal.RequireFromString(testCase.total))

			if !testCase.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, service.ErrTotalTooLarge)
			var validation *service.ValidationError
			require.True(t, errors.As(err, &validation))
			assert.Equal(t, service.FieldOrder, validation.Field)
			assert.Equal(t, "total_too_large", validation.Code)
		})
	}
}
