package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner/internal/models/request_models"
	"mealplanner/pkg/utils"
)

func TestMealService_ShoppingListScenario(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	salt := env.product(t, alice, "Salt", 0.2)
	soup := env.dish(t, alice, "Soup")
	env.ingredient(t, alice, soup, salt, 2)

	start, end := today()
	dinner, err := env.meals.CreateMeal(env.ctx, alice, request_models.CreateMealRequest{
		Name: "Dinner", StartDate: start, EndDate: end, DishIDs: []uint{soup},
	})
	require.NoError(t, err)

	lines, err := env.meals.ShoppingList(env.ctx, alice, []uint{dinner})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, salt, lines[0].ProductID)
	assert.Equal(t, "Salt", lines[0].ProductName)
	assert.Equal(t, "piece", lines[0].Measure)
	assert.Equal(t, 0.2, lines[0].Price)
	assert.Equal(t, 2.0, lines[0].TotalQuantity)

	lunch, err := env.meals.CreateMeal(env.ctx, alice, request_models.CreateMealRequest{
		Name: "Lunch", StartDate: start, EndDate: end, DishIDs: []uint{soup},
	})
	require.NoError(t, err)

	lines, err = env.meals.ShoppingList(env.ctx, alice, []uint{dinner, lunch})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 4.0, lines[0].TotalQuantity)
}

func TestMealService_ShoppingListLimits(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")

	_, err := env.meals.ShoppingList(env.ctx, alice, []uint{1, 2, 3, 4})
	assert.ErrorIs(t, err, utils.ErrTooManyMeals)

	_, err = env.meals.ShoppingList(env.ctx, alice, []uint{1, 0})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	lines, err := env.meals.ShoppingList(env.ctx, alice, []uint{})
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestMealService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	bobDish := env.dish(t, bob, "Cake")
	start, end := today()

	_, err := env.meals.CreateMeal(env.ctx, alice, request_models.CreateMealRequest{
		Name: "Backwards", StartDate: end, EndDate: start,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	_, err = env.meals.CreateMeal(env.ctx, alice, request_models.CreateMealRequest{
		Name: "Stolen", StartDate: start, EndDate: end, DishIDs: []uint{bobDish},
	})
	assert.ErrorIs(t, err, utils.ErrDishNotFound)

	_, err = env.meals.CreateMeal(env.ctx, alice, request_models.CreateMealRequest{
		Name: "   ", StartDate: start, EndDate: end,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	id, err := env.meals.CreateMeal(env.ctx, alice, request_models.CreateMealRequest{
		Name: "Same instant", StartDate: start, EndDate: start,
	})
	require.NoError(t, err)

	meal, err := env.meals.GetMeal(env.ctx, id, alice)
	require.NoError(t, err)
	assert.Empty(t, meal.Dishes)
}

func TestMealService_PatchKeepsRangeOrdered(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	start := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	id, err := env.meals.CreateMeal(env.ctx, alice, request_models.CreateMealRequest{
		Name: "Week", StartDate: start, EndDate: end,
	})
	require.NoError(t, err)

	tooEarly := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	err = env.meals.PatchMeal(env.ctx, id, alice, request_models.PatchMealRequest{EndDate: &tooEarly})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	later := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	require.NoError(t, env.meals.PatchMeal(env.ctx, id, alice, request_models.PatchMealRequest{EndDate: &later}))

	meal, err := env.meals.GetMeal(env.ctx, id, alice)
	require.NoError(t, err)
	assert.True(t, meal.StartDate.Equal(start))
	assert.True(t, meal.EndDate.Equal(later))

	err = env.meals.PatchMeal(env.ctx, id+10, alice, request_models.PatchMealRequest{EndDate: &later})
	assert.ErrorIs(t, err, utils.ErrMealNotFound)
}

func TestMealService_UpdateReplacesDishes(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	d1 := env.dish(t, alice, "One")
	d2 := env.dish(t, alice, "Two")
	d3 := env.dish(t, alice, "Three")
	start, end := today()

	id, err := env.meals.CreateMeal(env.ctx, alice, request_models.CreateMealRequest{
		Name: "Dinner", StartDate: start, EndDate: end, DishIDs: []uint{d1, d2},
	})
	require.NoError(t, err)

	replacement := []uint{d3}
	require.NoError(t, env.meals.UpdateMeal(env.ctx, id, alice, request_models.UpdateMealRequest{
		Name: "Dinner", StartDate: start, EndDate: end, DishIDs: &replacement,
	}))

	meal, err := env.meals.GetMeal(env.ctx, id, alice)
	require.NoError(t, err)
	require.Len(t, meal.Dishes, 1)
	assert.Equal(t, d3, meal.Dishes[0].ID)
}
