package request_models

import "time"

type CreateMealRequest struct {
	Name      string    `json:"name" binding:"required,max=255"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	DishIDs   []uint    `json:"dishIds" binding:"omitempty,max=100,dive,gt=0"`
}

// UpdateMealRequest replaces name and dates. Omitting dishIds keeps the current
// dishes; sending [] clears them.
type UpdateMealRequest struct {
	Name      string    `json:"name" binding:"required,max=255"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	DishIDs   *[]uint   `json:"dishIds" binding:"omitempty,max=100,dive,gt=0"`
}

type PatchMealRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=255"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
	DishIDs   *[]uint    `json:"dishIds" binding:"omitempty,max=100,dive,gt=0"`
}

type ShoppingListRequest struct {
	MealIDs []uint `json:"mealIds" binding:"required,max=100,dive,gt=0"`
}
