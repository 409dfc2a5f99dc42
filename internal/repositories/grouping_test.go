package repositories

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func TestGroupDishRows_OneDishPerIDInFirstSeenOrder(t *testing.T) {
	rows := []DishRow{
		{DishID: 7, DishName: "Soup", IngredientID: uintPtr(1), ProductID: uintPtr(10), ProductName: strPtr("Salt"), Measure: strPtr("piece"), Price: nullDec("0.5"), Quantity: nullDec("2")},
		{DishID: 3, DishName: "Toast"},
		{DishID: 7, DishName: "Soup", IngredientID: uintPtr(2), ProductID: uintPtr(11), ProductName: strPtr("Water"), Measure: strPtr("kg"), Price: nullDec("1"), Quantity: nullDec("1.5")},
	}

	dishes := GroupDishRows(rows)

	require.Len(t, dishes, 2)
	assert.Equal(t, uint(7), dishes[0].ID)
	assert.Equal(t, uint(3), dishes[1].ID)

	require.Len(t, dishes[0].IngredientList, 2)
	assert.Equal(t, "Salt", dishes[0].IngredientList[0].Product.Name)
	assert.Equal(t, 2.0, dishes[0].IngredientList[0].Quantity)
	assert.Equal(t, uint(7), dishes[0].IngredientList[1].DishID)
	assert.Equal(t, 1.5, dishes[0].IngredientList[1].Quantity)
}

func TestGroupDishRows_DishWithoutIngredientsHasEmptyList(t *testing.T) {
	dishes := GroupDishRows([]DishRow{{DishID: 1, DishName: "Plain"}})

	require.Len(t, dishes, 1)
	assert.NotNil(t, dishes[0].IngredientList)
	assert.Empty(t, dishes[0].IngredientList)
}

func TestGroupDishRows_NIngredients(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		var rows []DishRow
		if n == 0 {
			rows = append(rows, DishRow{DishID: 42})
		}
		for i := 0; i < n; i++ {
			rows = append(rows, DishRow{
				DishID:       42,
				IngredientID: uintPtr(uint(i + 1)),
				ProductID:    uintPtr(uint(100 + i)),
				ProductName:  strPtr("p"),
				Quantity:     nullDec("1"),
			})
		}

		dishes := GroupDishRows(rows)
		require.Len(t, dishes, 1)
		assert.Len(t, dishes[0].IngredientList, n)
	}
}

func TestGroupDishRows_EmptyInput(t *testing.T) {
	dishes := GroupDishRows(nil)
	assert.NotNil(t, dishes)
	assert.Empty(t, dishes)
}

func TestGroupMealRows_StampsUserAndDefaultsDishes(t *testing.T) {
	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	rows := []MealRow{
		{MealID: 1, MealName: "Lunch", StartDate: start, EndDate: start, DishID: uintPtr(9), DishName: strPtr("Soup")},
		{MealID: 2, MealName: "Empty", StartDate: start, EndDate: start},
		{MealID: 1, MealName: "Lunch", StartDate: start, EndDate: start, DishID: uintPtr(8), DishName: strPtr("Salad"), ImageURL: strPtr("http://img")},
	}

	meals := GroupMealRows(rows, 77)

	require.Len(t, meals, 2)
	assert.Equal(t, uint(77), meals[0].UserID)
	assert.Equal(t, uint(77), meals[1].UserID)
	require.Len(t, meals[0].Dishes, 2)
	assert.Equal(t, "Salad", meals[0].Dishes[1].Name)
	assert.Equal(t, "http://img", meals[0].Dishes[1].ImageURL)
	assert.NotNil(t, meals[1].Dishes)
	assert.Empty(t, meals[1].Dishes)
}
