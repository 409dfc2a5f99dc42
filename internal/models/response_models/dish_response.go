package response_models

// Ingredient is one line of a dish's ingredient list with its product expanded.
type Ingredient struct {
	ID       uint    `json:"id"`
	Product  Product `json:"product"`
	DishID   uint    `json:"dishId"`
	Quantity float64 `json:"quantity"`
}

// Dish always carries a non-nil IngredientList, empty when the dish has none.
type Dish struct {
	ID             uint         `json:"id"`
	Name           string       `json:"name"`
	Recipe         string       `json:"recipe"`
	ImageURL       string       `json:"imageUrl"`
	UserID         uint         `json:"userId"`
	IngredientList []Ingredient `json:"ingredientList"`
}
