package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "mealplanner/internal/models/db_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/pkg/utils"
)

// IngredientQuery filters are ANDed; zero values mean "no filter". UserID
// restricts results to ingredients of dishes that user owns.
type IngredientQuery struct {
	UserID     uint
	DishID     *uint
	ProductID  *uint
	SearchName string
}

type IngredientRepository interface {
	Create(ctx context.Context, ingredient *dbm.Ingredient) (uint, error)
	Get(ctx context.Context, cursor *uint, limit int, query IngredientQuery) ([]resp.Ingredient, error)
	GetByID(ctx context.Context, id uint) (*resp.Ingredient, error)
	Update(ctx context.Context, ingredient *dbm.Ingredient) error
	Delete(ctx context.Context, id uint) (int64, error)
	CountByProduct(ctx context.Context, productID uint) (int64, error)
}

type ingredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

type ingredientRow struct {
	IngredientID  uint            `gorm:"column:ingredient_id"`
	DishID        uint            `gorm:"column:dish_id"`
	Quantity      decimal.Decimal `gorm:"column:quantity"`
	ProductID     uint            `gorm:"column:product_id"`
	ProductName   string          `gorm:"column:product_name"`
	Measure       string          `gorm:"column:measure"`
	Price         decimal.Decimal `gorm:"column:price"`
	Emoji         *string         `gorm:"column:emoji"`
	ProductUserID uint            `gorm:"column:product_user_id"`
}

func (row ingredientRow) toResponse() resp.Ingredient {
	return resp.Ingredient{
		ID:     row.IngredientID,
		DishID: row.DishID,
		Product: resp.Product{
			ID:      row.ProductID,
			Name:    row.ProductName,
			Measure: row.Measure,
			Price:   row.Price.InexactFloat64(),
			Emoji:   row.Emoji,
			UserID:  row.ProductUserID,
		},
		Quantity: row.Quantity.InexactFloat64(),
	}
}

func (r *ingredientRepository) joinedRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("ingredients AS i").
		Select(`i.id AS ingredient_id, i.dish_id AS dish_id, i.quantity AS quantity,
			p.id AS product_id, p.name AS product_name, p.measure AS measure, p.price AS price,
			p.emoji AS emoji, p.user_id AS product_user_id`).
		Joins("JOIN products p ON p.id = i.product_id")
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *dbm.Ingredient) (uint, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(ingredient).Error; err != nil {
		return 0, err
	}
	return ingredient.ID, nil
}

func (r *ingredientRepository) Get(ctx context.Context, cursor *uint, limit int, query IngredientQuery) ([]resp.Ingredient, error) {
	q := r.joinedRows(ctx)
	if query.UserID != 0 {
		q = q.Joins("JOIN dishes d ON d.id = i.dish_id").Where("d.user_id = ?", query.UserID)
	}
	if query.DishID != nil {
		q = q.Where("i.dish_id = ?", *query.DishID)
	}
	if query.ProductID != nil {
		q = q.Where("i.product_id = ?", *query.ProductID)
	}

	var rows []ingredientRow
	err := q.Scopes(nameContains("p.name", query.SearchName), cursorPage("i.id", cursor, limit)).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]resp.Ingredient, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toResponse())
	}
	return out, nil
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uint) (*resp.Ingredient, error) {
	var rows []ingredientRow
	if err := r.joinedRows(ctx).Where("i.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, utils.ErrIngredientNotFound
	}
	out := rows[0].toResponse()
	return &out, nil
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *dbm.Ingredient) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Ingredient{}).
		Where("id = ?", ingredient.ID).
		Updates(map[string]interface{}{
			"product_id": ingredient.ProductID,
			"dish_id":    ingredient.DishID,
			"quantity":   ingredient.Quantity,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrIngredientNotFound
	}
	return nil
}

func (r *ingredientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&dbm.Ingredient{}, id)
	return res.RowsAffected, res.Error
}

func (r *ingredientRepository) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Ingredient{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}
