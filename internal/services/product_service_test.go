package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner/internal/models/request_models"
	"mealplanner/pkg/utils"
)

func TestProductService_CreateAndPatch(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	id := env.product(t, alice, "  Salt  ", 0.5)

	got, err := env.products.GetProduct(env.ctx, id, alice)
	require.NoError(t, err)
	assert.Equal(t, "Salt", got.Name)
	assert.Equal(t, 0.5, got.Price)
	assert.Equal(t, alice, got.UserID)

	gram := "gram"
	require.NoError(t, env.products.PatchProduct(env.ctx, id, alice, request_models.PatchProductRequest{Measure: &gram}))

	got, err = env.products.GetProduct(env.ctx, id, alice)
	require.NoError(t, err)
	assert.Equal(t, "gram", got.Measure)
	assert.Equal(t, 0.5, got.Price)

	bad := "litre"
	err = env.products.PatchProduct(env.ctx, id, alice, request_models.PatchProductRequest{Measure: &bad})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	blank := "  "
	err = env.products.PatchProduct(env.ctx, id, alice, request_models.PatchProductRequest{Name: &blank})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestProductService_DeleteInUse(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	salt := env.product(t, alice, "Salt", 1)
	soup := env.dish(t, alice, "Soup")
	ing := env.ingredient(t, alice, soup, salt, 2)

	_, err := env.products.DeleteProduct(env.ctx, salt, alice)
	assert.ErrorIs(t, err, utils.ErrProductInUse)

	deleted, err := env.products.DeleteProduct(env.ctx, salt, bob)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	_, err = env.ingredients.DeleteIngredient(env.ctx, ing, alice)
	require.NoError(t, err)

	deleted, err = env.products.DeleteProduct(env.ctx, salt, alice)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestProductService_ListScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice")
	bob := env.register(t, "bob")
	env.product(t, alice, "Salt", 1)
	env.product(t, bob, "Sugar", 1)

	products, err := env.products.ListProducts(env.ctx, alice, nil, 10, "")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Salt", products[0].Name)
}
