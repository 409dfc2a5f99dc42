package product_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealplanner/internal/repositories"
	"mealplanner/internal/services"
)

var Module = fx.Provide(
	provideProductRepo, provideProductService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideProductService(
	productRepo repositories.ProductRepository,
	ingredientRepo repositories.IngredientRepository,
	log *zap.Logger,
) services.ProductServiceInterface {
	return services.NewProductService(productRepo, ingredientRepo, log)
}
