package ingredient_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealplanner/internal/repositories"
	"mealplanner/internal/services"
)

var Module = fx.Provide(
	provideIngredientRepo, provideIngredientService)

func provideIngredientRepo(db *gorm.DB) repositories.IngredientRepository {
	return repositories.NewIngredientRepository(db)
}

func provideIngredientService(
	ingredientRepo repositories.IngredientRepository,
	dishRepo repositories.DishRepository,
	productRepo repositories.ProductRepository,
	log *zap.Logger,
) services.IngredientServiceInterface {
	return services.NewIngredientService(ingredientRepo, dishRepo, productRepo, log)
}
