package repositories

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "mealplanner/internal/models/db_models"
	"mealplanner/pkg/utils"
)

func TestIngredientRepository_Filters(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	bob := f.user("bob")
	salt := f.product(alice, "Salt", dbm.MeasurePiece, "1")
	rice := f.product(alice, "Rice", dbm.MeasureKg, "2")
	soup := f.dish(alice, "Soup")
	bowl := f.dish(alice, "Bowl")
	f.ingredient(soup, salt, "2")
	f.ingredient(bowl, rice, "0.3")
	f.ingredient(bowl, salt, "1")

	bobSalt := f.product(bob, "Salt", dbm.MeasurePiece, "1")
	bobDish := f.dish(bob, "Bob soup")
	f.ingredient(bobDish, bobSalt, "9")

	all, err := f.ingredients.Get(f.ctx, nil, 10, IngredientQuery{UserID: alice})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byDish, err := f.ingredients.Get(f.ctx, nil, 10, IngredientQuery{UserID: alice, DishID: &bowl})
	require.NoError(t, err)
	assert.Len(t, byDish, 2)

	byProduct, err := f.ingredients.Get(f.ctx, nil, 10, IngredientQuery{UserID: alice, ProductID: &salt})
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	byName, err := f.ingredients.Get(f.ctx, nil, 10, IngredientQuery{UserID: alice, SearchName: "RI"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Rice", byName[0].Product.Name)
	assert.Equal(t, 0.3, byName[0].Quantity)

	paged, err := f.ingredients.Get(f.ctx, uintPtr(all[0].ID), 1, IngredientQuery{UserID: alice})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, all[1].ID, paged[0].ID)
}

func TestIngredientRepository_UpdateAndDelete(t *testing.T) {
	f := newFixture(t)
	alice := f.user("alice")
	salt := f.product(alice, "Salt", dbm.MeasurePiece, "1")
	pepper := f.product(alice, "Pepper", dbm.MeasureGram, "1")
	soup := f.dish(alice, "Soup")
	id := f.ingredient(soup, salt, "2")

	require.NoError(t, f.ingredients.Update(f.ctx, &dbm.Ingredient{
		BaseModel: dbm.BaseModel{ID: id},
		DishID:    soup,
		ProductID: pepper,
		Quantity:  decimal.RequireFromString("5"),
	}))

	got, err := f.ingredients.GetByID(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, pepper, got.Product.ID)
	assert.Equal(t, 5.0, got.Quantity)

	err = f.ingredients.Update(f.ctx, &dbm.Ingredient{BaseModel: dbm.BaseModel{ID: id + 50}, DishID: soup, ProductID: salt})
	assert.ErrorIs(t, err, utils.ErrIngredientNotFound)

	deleted, err := f.ingredients.Delete(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = f.ingredients.Delete(f.ctx, id)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
