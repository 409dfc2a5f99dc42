package request_models

type CreateDishRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Recipe   string `json:"recipe"`
	ImageURL string `json:"imageUrl" binding:"omitempty,max=2048"`
}

type PatchDishRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Recipe   *string `json:"recipe"`
	ImageURL *string `json:"imageUrl" binding:"omitempty,max=2048"`
}

type IngredientRequest struct {
	ProductID uint     `json:"productId" binding:"required,gt=0"`
	DishID    uint     `json:"dishId" binding:"required,gt=0"`
	Quantity  *float64 `json:"quantity" binding:"required,gt=0"`
}
