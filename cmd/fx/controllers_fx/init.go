package controllers_fx

import (
	"go.uber.org/fx"

	"mealplanner/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProductController),
	fx.Provide(controllers.NewDishController),
	fx.Provide(controllers.NewIngredientController),
	fx.Provide(controllers.NewMealController))
