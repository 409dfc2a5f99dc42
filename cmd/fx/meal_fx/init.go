package meal_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealplanner/internal/config"
	"mealplanner/internal/repositories"
	"mealplanner/internal/services"
)

var Module = fx.Provide(
	provideMealRepo, provideMealService)

func provideMealRepo(db *gorm.DB) repositories.MealRepository {
	return repositories.NewMealRepository(db)
}

func provideMealService(
	mealRepo repositories.MealRepository,
	dishRepo repositories.DishRepository,
	cfg *config.Config,
	log *zap.Logger,
) services.MealServiceInterface {
	return services.NewMealService(mealRepo, dishRepo, cfg, log)
}
