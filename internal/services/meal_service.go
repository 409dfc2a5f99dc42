package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"mealplanner/internal/config"
	"mealplanner/internal/models/request_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/internal/repositories"
	"mealplanner/pkg/utils"
)

type MealFilter struct {
	StartDate string
	EndDate   string
	Search    string
}

type MealServiceInterface interface {
	CreateMeal(ctx context.Context, userID uint, req request_models.CreateMealRequest) (uint, error)
	ListMeals(ctx context.Context, userID uint, cursor *uint, limit int, filter MealFilter) ([]resp.Meal, error)
	GetMeal(ctx context.Context, id uint, userID uint) (*resp.Meal, error)
	UpdateMeal(ctx context.Context, id uint, userID uint, req request_models.UpdateMealRequest) error
	PatchMeal(ctx context.Context, id uint, userID uint, req request_models.PatchMealRequest) error
	DeleteMeal(ctx context.Context, id uint, userID uint) (int64, error)
	ShoppingList(ctx context.Context, userID uint, mealIDs []uint) ([]resp.AggregatedIngredient, error)
}

type MealService struct {
	mealRepo   repositories.MealRepository
	dishRepo   repositories.DishRepository
	maxMealIDs int
	log        *zap.Logger
}

func NewMealService(
	mealRepo repositories.MealRepository,
	dishRepo repositories.DishRepository,
	cfg *config.Config,
	log *zap.Logger,
) MealServiceInterface {
	return &MealService{
		mealRepo:   mealRepo,
		dishRepo:   dishRepo,
		maxMealIDs: cfg.MaxAggregateMealIDs,
		log:        log.Named("meal_service"),
	}
}

func (s *MealService) CreateMeal(ctx context.Context, userID uint, req request_models.CreateMealRequest) (uint, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, utils.ErrInvalidInput
	}
	if err := validateRange(req.StartDate, req.EndDate); err != nil {
		return 0, err
	}
	if err := s.checkDishes(ctx, userID, req.DishIDs); err != nil {
		return 0, err
	}

	id, err := s.mealRepo.Create(ctx, repositories.CreateMealInput{
		UserID:    userID,
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		DishIDs:   req.DishIDs,
	})
	if err != nil {
		return 0, repoError(s.log, "create meal", err)
	}

	s.log.Debug("meal created", zap.Uint("meal_id", id), zap.Int("dishes", len(req.DishIDs)))
	return id, nil
}

func (s *MealService) ListMeals(ctx context.Context, userID uint, cursor *uint, limit int, filter MealFilter) ([]resp.Meal, error) {
	meals, err := s.mealRepo.Get(ctx, cursor, limit, repositories.MealQuery{
		UserID:     userID,
		StartDate:  filter.StartDate,
		EndDate:    filter.EndDate,
		SearchName: filter.Search,
	})
	if err != nil {
		return nil, repoError(s.log, "list meals", err)
	}
	return meals, nil
}

func (s *MealService) GetMeal(ctx context.Context, id uint, userID uint) (*resp.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, repoError(s.log, "get meal", err)
	}
	return meal, nil
}

func (s *MealService) UpdateMeal(ctx context.Context, id uint, userID uint, req request_models.UpdateMealRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return utils.ErrInvalidInput
	}
	if err := validateRange(req.StartDate, req.EndDate); err != nil {
		return err
	}
	if req.DishIDs != nil {
		if err := s.checkDishes(ctx, userID, *req.DishIDs); err != nil {
			return err
		}
	}

	err := s.mealRepo.Update(ctx, repositories.UpdateMealInput{
		ID:        id,
		UserID:    userID,
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		DishIDs:   req.DishIDs,
	})
	return repoError(s.log, "update meal", err)
}

// PatchMeal changes only the supplied fields. When one date is supplied the
// other is taken from the stored meal so the range stays ordered.
func (s *MealService) PatchMeal(ctx context.Context, id uint, userID uint, req request_models.PatchMealRequest) error {
	in := repositories.PatchMealInput{
		ID:        id,
		UserID:    userID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		DishIDs:   req.DishIDs,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return utils.ErrInvalidInput
		}
		in.Name = &name
	}

	if req.StartDate != nil || req.EndDate != nil {
		current, err := s.mealRepo.GetByID(ctx, id, userID)
		if err != nil {
			return repoError(s.log, "load meal for patch", err)
		}
		start, end := current.StartDate, current.EndDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		if err := validateRange(start, end); err != nil {
			return err
		}
	}

	if req.DishIDs != nil {
		if err := s.checkDishes(ctx, userID, *req.DishIDs); err != nil {
			return err
		}
	}

	return repoError(s.log, "patch meal", s.mealRepo.UpdatePatch(ctx, in))
}

func (s *MealService) DeleteMeal(ctx context.Context, id uint, userID uint) (int64, error) {
	deleted, err := s.mealRepo.Delete(ctx, id, userID)
	if err != nil {
		return 0, repoError(s.log, "delete meal", err)
	}
	return deleted, nil
}

// ShoppingList totals ingredient demand per product over the given meals.
// Ids of meals the user does not own are silently ignored.
func (s *MealService) ShoppingList(ctx context.Context, userID uint, mealIDs []uint) ([]resp.AggregatedIngredient, error) {
	if s.maxMealIDs > 0 && len(mealIDs) > s.maxMealIDs {
		return nil, utils.ErrTooManyMeals
	}
	for _, id := range mealIDs {
		if id == 0 {
			return nil, utils.ErrInvalidInput
		}
	}

	start := time.Now()
	lines, err := s.mealRepo.GetAggregatedIngredients(ctx, mealIDs, userID)
	if err != nil {
		return nil, repoError(s.log, "aggregate ingredients", err)
	}

	s.log.Debug("shopping list built",
		zap.Int("meals", len(mealIDs)),
		zap.Int("lines", len(lines)),
		zap.Duration("took", time.Since(start)))
	return lines, nil
}

// checkDishes fails with ErrDishNotFound unless every id is a dish owned by userID.
func (s *MealService) checkDishes(ctx context.Context, userID uint, dishIDs []uint) error {
	for _, id := range dishIDs {
		if id == 0 {
			return utils.ErrInvalidInput
		}
	}
	ids := repositories.UniqueIDs(dishIDs)
	if len(ids) == 0 {
		return nil
	}

	owned, err := s.dishRepo.CountOwned(ctx, ids, userID)
	if err != nil {
		return repoError(s.log, "check dish owner", err)
	}
	if owned != int64(len(ids)) {
		return utils.ErrDishNotFound
	}
	return nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return utils.ErrInvalidInput
	}
	if end.Before(start) {
		return utils.ErrInvalidDateRange
	}
	return nil
}
