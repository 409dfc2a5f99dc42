package dish_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealplanner/internal/repositories"
	"mealplanner/internal/services"
)

var Module = fx.Provide(
	provideDishRepo, provideDishService)

func provideDishRepo(db *gorm.DB) repositories.DishRepository {
	return repositories.NewDishRepository(db)
}

func provideDishService(dishRepo repositories.DishRepository, log *zap.Logger) services.DishServiceInterface {
	return services.NewDishService(dishRepo, log)
}
