package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mealplanner/internal/infra"
	dbm "mealplanner/internal/models/db_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/pkg/utils"
)

type CreateMealInput struct {
	UserID    uint
	Name      string
	StartDate time.Time
	EndDate   time.Time
	DishIDs   []uint
}

// UpdateMealInput overwrites name and dates. A nil DishIDs keeps the current
// links; a non-nil one (even empty) replaces them.
type UpdateMealInput struct {
	ID        uint
	UserID    uint
	Name      string
	StartDate time.Time
	EndDate   time.Time
	DishIDs   *[]uint
}

type PatchMealInput struct {
	ID        uint
	UserID    uint
	Name      *string
	StartDate *time.Time
	EndDate   *time.Time
	DishIDs   *[]uint
}

// MealQuery dates are raw user input: epoch milliseconds or a date string.
// Unparseable or blank dates are ignored.
type MealQuery struct {
	UserID     uint
	StartDate  string
	EndDate    string
	SearchName string
}

type MealRepository interface {
	Create(ctx context.Context, in CreateMealInput) (uint, error)
	Get(ctx context.Context, cursor *uint, limit int, query MealQuery) ([]resp.Meal, error)
	GetByID(ctx context.Context, id uint, userID uint) (*resp.Meal, error)
	Update(ctx context.Context, in UpdateMealInput) error
	UpdatePatch(ctx context.Context, in PatchMealInput) error
	Delete(ctx context.Context, id uint, userID uint) (int64, error)
	GetAggregatedIngredients(ctx context.Context, mealIDs []uint, userID uint) ([]resp.AggregatedIngredient, error)
}

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

const mealRowColumns = `m.id AS meal_id, m.name AS meal_name, m.start_date AS start_date, m.end_date AS end_date,
	d.id AS dish_id, d.name AS dish_name, d.recipe AS recipe, d.image_url AS image_url`

func (r *mealRepository) joinedRows(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("meals AS m").
		Select(mealRowColumns).
		Joins("LEFT JOIN meal_dishes md ON md.meal_id = m.id").
		Joins("LEFT JOIN dishes d ON d.id = md.dish_id").
		Order("m.id ASC, md.id ASC")
}

func (r *mealRepository) Create(ctx context.Context, in CreateMealInput) (uint, error) {
	meal := dbm.Meal{
		Name:      in.Name,
		StartDate: in.StartDate.UTC(),
		EndDate:   in.EndDate.UTC(),
		UserID:    in.UserID,
	}

	err := infra.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&meal).Error; err != nil {
			return err
		}
		return insertMealDishes(tx, meal.ID, in.UserID, in.DishIDs)
	})
	if err != nil {
		return 0, err
	}
	return meal.ID, nil
}

// Get pages over meals, then joins their dishes. A date bound keeps meals whose
// range overlaps it: end_date >= start and start_date <= end.
func (r *mealRepository) Get(ctx context.Context, cursor *uint, limit int, query MealQuery) ([]resp.Meal, error) {
	page := r.db.WithContext(ctx).Model(&dbm.Meal{}).Select("id").Where("user_id = ?", query.UserID)
	if start, ok := utils.ParseDateInput(query.StartDate); ok {
		page = page.Where("end_date >= ?", start)
	}
	if end, ok := utils.ParseDateInput(query.EndDate); ok {
		page = page.Where("start_date <= ?", end)
	}
	page = nameContains("name", query.SearchName)(page)
	page = cursorPage("id", cursor, limit)(page)

	var rows []MealRow
	if err := r.joinedRows(ctx).Where("m.id IN (?)", page).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return GroupMealRows(rows, query.UserID), nil
}

func (r *mealRepository) GetByID(ctx context.Context, id uint, userID uint) (*resp.Meal, error) {
	var rows []MealRow
	err := r.joinedRows(ctx).
		Where("m.id = ? AND m.user_id = ?", id, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	meals := GroupMealRows(rows, userID)
	if len(meals) == 0 {
		return nil, utils.ErrMealNotFound
	}
	return &meals[0], nil
}

func (r *mealRepository) Update(ctx context.Context, in UpdateMealInput) error {
	return infra.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&dbm.Meal{}).
			Where("id = ? AND user_id = ?", in.ID, in.UserID).
			Updates(map[string]interface{}{
				"name":       in.Name,
				"start_date": in.StartDate.UTC(),
				"end_date":   in.EndDate.UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrMealNotFound
		}

		if in.DishIDs == nil {
			return nil
		}
		return replaceMealDishes(tx, in.ID, in.UserID, *in.DishIDs)
	})
}

func (r *mealRepository) UpdatePatch(ctx context.Context, in PatchMealInput) error {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.StartDate != nil {
		updates["start_date"] = in.StartDate.UTC()
	}
	if in.EndDate != nil {
		updates["end_date"] = in.EndDate.UTC()
	}

	return infra.WithTransaction(ctx, r.db, func(tx *gorm.DB) error {
		scoped := tx.Model(&dbm.Meal{}).Where("id = ? AND user_id = ?", in.ID, in.UserID)
		if len(updates) == 0 {
			if err := requireRow(scoped, utils.ErrMealNotFound); err != nil {
				return err
			}
		} else {
			res := scoped.Updates(updates)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return utils.ErrMealNotFound
			}
		}

		if in.DishIDs == nil {
			return nil
		}
		return replaceMealDishes(tx, in.ID, in.UserID, *in.DishIDs)
	})
}

// Delete removes the meal; its junction rows cascade.
func (r *mealRepository) Delete(ctx context.Context, id uint, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&dbm.Meal{})
	return res.RowsAffected, res.Error
}

// replaceMealDishes drops every link of the meal and inserts the new set. It
// must run inside the caller's transaction.
func replaceMealDishes(tx *gorm.DB, mealID uint, userID uint, dishIDs []uint) error {
	if err := tx.Where("meal_id = ? AND user_id = ?", mealID, userID).Delete(&dbm.MealDish{}).Error; err != nil {
		return err
	}
	return insertMealDishes(tx, mealID, userID, dishIDs)
}

func insertMealDishes(tx *gorm.DB, mealID uint, userID uint, dishIDs []uint) error {
	ids := UniqueIDs(dishIDs)
	if len(ids) == 0 {
		return nil
	}

	links := make([]dbm.MealDish, 0, len(ids))
	for _, dishID := range ids {
		links = append(links, dbm.MealDish{MealID: mealID, DishID: dishID, UserID: userID})
	}
	return tx.Omit(clause.Associations).Create(&links).Error
}

// UniqueIDs drops duplicates and zeros, keeping first-seen order.
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
