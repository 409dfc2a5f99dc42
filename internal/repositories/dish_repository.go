package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "mealplanner/internal/models/db_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/pkg/utils"
)

type DishQuery struct {
	UserID     uint
	SearchName string
}

// PatchDishInput updates only the non-nil fields.
type PatchDishInput struct {
	ID       uint
	Name     *string
	Recipe   *string
	ImageURL *string
}

type DishRepository interface {
	Create(ctx context.Context, dish *dbm.Dish) (uint, error)
	Get(ctx context.Context, cursor *uint, limit int, query DishQuery) ([]resp.Dish, error)
	GetByID(ctx context.Context, id uint, userID uint) (*resp.Dish, error)
	Update(ctx context.Context, dish *dbm.Dish, userID uint) error
	UpdatePatch(ctx context.Context, in PatchDishInput, userID uint) error
	Delete(ctx context.Context, id uint, userID uint) (int64, error)
	// CountOwned counts how many of the distinct ids are dishes owned by userID.
	CountOwned(ctx context.Context, ids []uint, userID uint) (int64, error)
}

type dishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

const dishRowColumns = `d.id AS dish_id, d.name AS dish_name, d.recipe AS recipe, d.image_url AS image_url, d.user_id AS user_id,
	i.id AS ingredient_id, p.id AS product_id, p.name AS product_name, p.measure AS measure, p.price AS price, i.quantity AS quantity`

func (r *dishRepository) joinedRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("dishes AS d").
		Select(dishRowColumns).
		Joins("LEFT JOIN ingredients i ON i.dish_id = d.id").
		Joins("LEFT JOIN products p ON p.id = i.product_id").
		Order("d.id ASC, i.id ASC")
}

func (r *dishRepository) Create(ctx context.Context, dish *dbm.Dish) (uint, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(dish).Error; err != nil {
		return 0, err
	}
	return dish.ID, nil
}

// Get pages over dishes (not joined rows), then loads every ingredient of the
// selected page so a dish is never split across pages.
func (r *dishRepository) Get(ctx context.Context, cursor *uint, limit int, query DishQuery) ([]resp.Dish, error) {
	page := r.db.WithContext(ctx).Model(&dbm.Dish{}).Select("id").Where("user_id = ?", query.UserID)
	page = nameContains("name", query.SearchName)(page)
	page = cursorPage("id", cursor, limit)(page)

	var rows []DishRow
	if err := r.joinedRows(ctx).Where("d.id IN (?)", page).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return GroupDishRows(rows), nil
}

func (r *dishRepository) GetByID(ctx context.Context, id uint, userID uint) (*resp.Dish, error) {
	var rows []DishRow
	err := r.joinedRows(ctx).
		Where("d.id = ? AND d.user_id = ?", id, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	dishes := GroupDishRows(rows)
	if len(dishes) == 0 {
		return nil, utils.ErrDishNotFound
	}
	return &dishes[0], nil
}

func (r *dishRepository) Update(ctx context.Context, dish *dbm.Dish, userID uint) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Dish{}).
		Where("id = ? AND user_id = ?", dish.ID, userID).
		Updates(map[string]interface{}{
			"name":      dish.Name,
			"recipe":    dish.Recipe,
			"image_url": dish.ImageURL,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrDishNotFound
	}
	return nil
}

func (r *dishRepository) UpdatePatch(ctx context.Context, in PatchDishInput, userID uint) error {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Recipe != nil {
		updates["recipe"] = *in.Recipe
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}

	scoped := r.db.WithContext(ctx).Model(&dbm.Dish{}).Where("id = ? AND user_id = ?", in.ID, userID)
	if len(updates) == 0 {
		return requireRow(scoped, utils.ErrDishNotFound)
	}

	res := scoped.Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrDishNotFound
	}
	return nil
}

// Delete removes the dish; its ingredients and meal links go with it through
// the ON DELETE CASCADE constraints.
func (r *dishRepository) Delete(ctx context.Context, id uint, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&dbm.Dish{})
	return res.RowsAffected, res.Error
}

func (r *dishRepository) CountOwned(ctx context.Context, ids []uint, userID uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Dish{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Count(&count).Error
	return count, err
}
