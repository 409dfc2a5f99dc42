package repositories

import (
	"time"

	"github.com/shopspring/decimal"

	resp "mealplanner/internal/models/response_models"
)

// DishRow is one row of dishes LEFT JOIN ingredients LEFT JOIN products. Dish
// columns repeat once per ingredient; ingredient columns are all NULL for a
// dish without ingredients.
type DishRow struct {
	DishID   uint   `gorm:"column:dish_id"`
	DishName string `gorm:"column:dish_name"`
	Recipe   string `gorm:"column:recipe"`
	ImageURL string `gorm:"column:image_url"`
	UserID   uint   `gorm:"column:user_id"`

	IngredientID *uint               `gorm:"column:ingredient_id"`
	ProductID    *uint               `gorm:"column:product_id"`
	ProductName  *string             `gorm:"column:product_name"`
	Measure      *string             `gorm:"column:measure"`
	Price        decimal.NullDecimal `gorm:"column:price"`
	Quantity     decimal.NullDecimal `gorm:"column:quantity"`
}

// MealRow is one row of meals LEFT JOIN meal_dishes LEFT JOIN dishes.
type MealRow struct {
	MealID    uint      `gorm:"column:meal_id"`
	MealName  string    `gorm:"column:meal_name"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`

	DishID   *uint   `gorm:"column:dish_id"`
	DishName *string `gorm:"column:dish_name"`
	Recipe   *string `gorm:"column:recipe"`
	ImageURL *string `gorm:"column:image_url"`
}

// GroupDishRows folds joined rows into dishes in first-seen order. Each dish
// appears once and always has a non-nil ingredient list.
func GroupDishRows(rows []DishRow) []resp.Dish {
	index := make(map[uint]int, len(rows))
	dishes := make([]resp.Dish, 0, len(rows))

	for _, row := range rows {
		pos, seen := index[row.DishID]
		if !seen {
			dishes = append(dishes, resp.Dish{
				ID:             row.DishID,
				Name:           row.DishName,
				Recipe:         row.Recipe,
				ImageURL:       row.ImageURL,
				UserID:         row.UserID,
				IngredientList: []resp.Ingredient{},
			})
			pos = len(dishes) - 1
			index[row.DishID] = pos
		}

		if row.IngredientID == nil || row.ProductID == nil || row.ProductName == nil {
			continue
		}

		dishes[pos].IngredientList = append(dishes[pos].IngredientList, resp.Ingredient{
			ID:     *row.IngredientID,
			DishID: row.DishID,
			Product: resp.Product{
				ID:      *row.ProductID,
				Name:    *row.ProductName,
				Measure: stringOr(row.Measure, ""),
				Price:   nullDecimalFloat(row.Price),
			},
			Quantity: nullDecimalFloat(row.Quantity),
		})
	}

	return dishes
}

// GroupMealRows folds joined rows into meals in first-seen order, nesting dish
// summaries. Every meal is stamped with userID and has a non-nil dish list.
func GroupMealRows(rows []MealRow, userID uint) []resp.Meal {
	index := make(map[uint]int, len(rows))
	meals := make([]resp.Meal, 0, len(rows))

	for _, row := range rows {
		pos, seen := index[row.MealID]
		if !seen {
			meals = append(meals, resp.Meal{
				ID:        row.MealID,
				Name:      row.MealName,
				StartDate: row.StartDate,
				EndDate:   row.EndDate,
				UserID:    userID,
				Dishes:    []resp.DishSummary{},
			})
			pos = len(meals) - 1
			index[row.MealID] = pos
		}

		if row.DishID == nil {
			continue
		}

		meals[pos].Dishes = append(meals[pos].Dishes, resp.DishSummary{
			ID:       *row.DishID,
			Name:     stringOr(row.DishName, ""),
			Recipe:   stringOr(row.Recipe, ""),
			ImageURL: stringOr(row.ImageURL, ""),
		})
	}

	return meals
}

func stringOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func nullDecimalFloat(d decimal.NullDecimal) float64 {
	if !d.Valid {
		return 0
	}
	return d.Decimal.InexactFloat64()
}
