package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealplanner/internal/api/controllers"
	"mealplanner/internal/config"
	dbm "mealplanner/internal/models/db_models"
	mem "mealplanner/pkg/memcache"
	"mealplanner/pkg/middleware"
	"mealplanner/pkg/utils"
)

type Controllers struct {
	Account    *controllers.AccountController
	Product    *controllers.ProductController
	Dish       *controllers.DishController
	Ingredient *controllers.IngredientController
	Meal       *controllers.MealController
}

func ProvideRouter(
	cfg *config.Config,
	log *zap.Logger,
	issuer *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	accountController *controllers.AccountController,
	productController *controllers.ProductController,
	dishController *controllers.DishController,
	ingredientController *controllers.IngredientController,
	mealController *controllers.MealController,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, middleware.JWTAuthMiddleware(issuer, revoked), Controllers{
		Account:    accountController,
		Product:    productController,
		Dish:       dishController,
		Ingredient: ingredientController,
		Meal:       mealController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, c Controllers) {
	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", c.Account.Register)
	accountGroup.POST("/login", c.Account.Login)
	accountGroup.POST("/logout", auth, c.Account.Logout)
	accountGroup.POST("/change-password", auth, c.Account.ChangePassword)
	accountGroup.GET("/me", auth, c.Account.Me)
	accountGroup.GET("/all", auth, middleware.RoleMiddleware(dbm.RoleAdmin), c.Account.ListAccounts)

	productGroup := r.Group("/products", auth)
	productGroup.GET("", c.Product.ListProducts)
	productGroup.POST("", c.Product.CreateProduct)
	productGroup.GET("/:id", c.Product.GetProduct)
	productGroup.PUT("/:id", c.Product.UpdateProduct)
	productGroup.PATCH("/:id", c.Product.PatchProduct)
	productGroup.DELETE("/:id", c.Product.DeleteProduct)

	dishGroup := r.Group("/dishes", auth)
	dishGroup.GET("", c.Dish.ListDishes)
	dishGroup.POST("", c.Dish.CreateDish)
	dishGroup.GET("/:id", c.Dish.GetDish)
	dishGroup.PUT("/:id", c.Dish.UpdateDish)
	dishGroup.PATCH("/:id", c.Dish.PatchDish)
	dishGroup.DELETE("/:id", c.Dish.DeleteDish)

	ingredientGroup := r.Group("/ingredients", auth)
	ingredientGroup.GET("", c.Ingredient.ListIngredients)
	ingredientGroup.POST("", c.Ingredient.CreateIngredient)
	ingredientGroup.GET("/:id", c.Ingredient.GetIngredient)
	ingredientGroup.PUT("/:id", c.Ingredient.UpdateIngredient)
	ingredientGroup.DELETE("/:id", c.Ingredient.DeleteIngredient)

	mealGroup := r.Group("/meals", auth)
	mealGroup.GET("", c.Meal.ListMeals)
	mealGroup.POST("", c.Meal.CreateMeal)
	mealGroup.POST("/shopping-list", c.Meal.ShoppingList)
	mealGroup.GET("/:id", c.Meal.GetMeal)
	mealGroup.PUT("/:id", c.Meal.UpdateMeal)
	mealGroup.PATCH("/:id", c.Meal.PatchMeal)
	mealGroup.DELETE("/:id", c.Meal.DeleteMeal)
}
