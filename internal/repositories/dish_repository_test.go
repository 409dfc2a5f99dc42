package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "mealplanner/internal/models/db_models"
	"mealplanner/pkg/utils"
)

func TestDishRepository_GetByIDNestsIngredients(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	salt := f.product(alice, "Salt", dbm.MeasurePiece, "0.5")
	water := f.product(alice, "Water", dbm.MeasureKg, "1")
	soup := f.dish(alice, "Soup")
	f.ingredient(soup, salt, "2")
	f.ingredient(soup, water, "1.5")

	dish, err := f.dishes.GetByID(f.ctx, soup, alice)
	require.NoError(t, err)
	assert.Equal(t, "Soup", dish.Name)
	assert.Equal(t, alice, dish.UserID)
	require.Len(t, dish.IngredientList, 2)
	assert.Equal(t, "Salt", dish.IngredientList[0].Product.Name)
	assert.Equal(t, "piece", dish.IngredientList[0].Product.Measure)
	assert.Equal(t, 0.5, dish.IngredientList[0].Product.Price)
	assert.Equal(t, 2.0, dish.IngredientList[0].Quantity)
	assert.Equal(t, 1.5, dish.IngredientList[1].Quantity)
}

func TestDishRepository_EmptyIngredientList(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	plain := f.dish(alice, "Plain rice")

	dish, err := f.dishes.GetByID(f.ctx, plain, alice)
	require.NoError(t, err)
	assert.NotNil(t, dish.IngredientList)
	assert.Empty(t, dish.IngredientList)
}

func TestDishRepository_PagesOverDishesNotRows(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	salt := f.product(alice, "Salt", dbm.MeasurePiece, "1")
	pepper := f.product(alice, "Pepper", dbm.MeasureGram, "1")
	water := f.product(alice, "Water", dbm.MeasureKg, "1")

	soup := f.dish(alice, "Soup")
	f.ingredient(soup, salt, "1")
	f.ingredient(soup, pepper, "1")
	f.ingredient(soup, water, "1")
	stew := f.dish(alice, "Stew")

	first, err := f.dishes.Get(f.ctx, nil, 1, DishQuery{UserID: alice})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, soup, first[0].ID)
	assert.Len(t, first[0].IngredientList, 3)

	second, err := f.dishes.Get(f.ctx, uintPtr(soup), 1, DishQuery{UserID: alice})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, stew, second[0].ID)
	assert.Empty(t, second[0].IngredientList)
}

func TestDishRepository_SearchAndIsolation(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	bob := f.user("bob")
	f.dish(alice, "Tomato Soup")
	f.dish(alice, "Salad")
	bobSoup := f.dish(bob, "Soup")

	found, err := f.dishes.Get(f.ctx, nil, 10, DishQuery{UserID: alice, SearchName: "SOUP"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Tomato Soup", found[0].Name)

	_, err = f.dishes.GetByID(f.ctx, bobSoup, alice)
	assert.ErrorIs(t, err, utils.ErrDishNotFound)

	owned, err := f.dishes.CountOwned(f.ctx, []uint{bobSoup, found[0].ID}, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), owned)
}

func TestDishRepository_UpdateAndPatch(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	soup := f.dish(alice, "Soup")

	require.NoError(t, f.dishes.Update(f.ctx, &dbm.Dish{
		BaseModel: dbm.BaseModel{ID: soup},
		Name:      "Miso soup",
		Recipe:    "boil",
		ImageURL:  "http://img/miso.png",
	}, alice))

	recipe := "simmer"
	require.NoError(t, f.dishes.UpdatePatch(f.ctx, PatchDishInput{ID: soup, Recipe: &recipe}, alice))

	dish, err := f.dishes.GetByID(f.ctx, soup, alice)
	require.NoError(t, err)
	assert.Equal(t, "Miso soup", dish.Name)
	assert.Equal(t, "simmer", dish.Recipe)
	assert.Equal(t, "http://img/miso.png", dish.ImageURL)

	err = f.dishes.UpdatePatch(f.ctx, PatchDishInput{ID: soup + 100}, alice)
	assert.ErrorIs(t, err, utils.ErrDishNotFound)
}

func TestDishRepository_DeleteCascadesIngredientsAndMealLinks(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	salt := f.product(alice, "Salt", dbm.MeasurePiece, "1")
	soup := f.dish(alice, "Soup")
	ing := f.ingredient(soup, salt, "2")
	dinner := f.meal(alice, "Dinner", day(1), day(1), soup)

	deleted, err := f.dishes.Delete(f.ctx, soup, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = f.ingredients.GetByID(f.ctx, ing)
	assert.ErrorIs(t, err, utils.ErrIngredientNotFound)

	meal, err := f.meals.GetByID(f.ctx, dinner, alice)
	require.NoError(t, err)
	assert.Empty(t, meal.Dishes)
}
