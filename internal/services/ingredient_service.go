package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	dbm "mealplanner/internal/models/db_models"
	"mealplanner/internal/models/request_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/internal/repositories"
	"mealplanner/pkg/utils"
)

type IngredientFilter struct {
	DishID    *uint
	ProductID *uint
	Search    string
}

type IngredientServiceInterface interface {
	CreateIngredient(ctx context.Context, userID uint, req request_models.IngredientRequest) (uint, error)
	ListIngredients(ctx context.Context, userID uint, cursor *uint, limit int, filter IngredientFilter) ([]resp.Ingredient, error)
	GetIngredient(ctx context.Context, id uint, userID uint) (*resp.Ingredient, error)
	UpdateIngredient(ctx context.Context, id uint, userID uint, req request_models.IngredientRequest) error
	DeleteIngredient(ctx context.Context, id uint, userID uint) (int64, error)
}

// IngredientService scopes every ingredient through the dish it belongs to:
// a user only sees and edits ingredients of their own dishes, and may only
// reference their own products.
type IngredientService struct {
	ingredientRepo repositories.IngredientRepository
	dishRepo       repositories.DishRepository
	productRepo    repositories.ProductRepository
	log            *zap.Logger
}

func NewIngredientService(
	ingredientRepo repositories.IngredientRepository,
	dishRepo repositories.DishRepository,
	productRepo repositories.ProductRepository,
	log *zap.Logger,
) IngredientServiceInterface {
	return &IngredientService{
		ingredientRepo: ingredientRepo,
		dishRepo:       dishRepo,
		productRepo:    productRepo,
		log:            log.Named("ingredient_service"),
	}
}

func (s *IngredientService) CreateIngredient(ctx context.Context, userID uint, req request_models.IngredientRequest) (uint, error) {
	ingredient, err := s.ingredientFromRequest(ctx, userID, req)
	if err != nil {
		return 0, err
	}

	id, err := s.ingredientRepo.Create(ctx, ingredient)
	if err != nil {
		return 0, repoError(s.log, "create ingredient", err)
	}
	return id, nil
}

func (s *IngredientService) ListIngredients(ctx context.Context, userID uint, cursor *uint, limit int, filter IngredientFilter) ([]resp.Ingredient, error) {
	ingredients, err := s.ingredientRepo.Get(ctx, cursor, limit, repositories.IngredientQuery{
		UserID:     userID,
		DishID:     filter.DishID,
		ProductID:  filter.ProductID,
		SearchName: filter.Search,
	})
	if err != nil {
		return nil, repoError(s.log, "list ingredients", err)
	}
	return ingredients, nil
}

func (s *IngredientService) GetIngredient(ctx context.Context, id uint, userID uint) (*resp.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, repoError(s.log, "get ingredient", err)
	}

	owned, err := s.ownsDish(ctx, ingredient.DishID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, utils.ErrIngredientNotFound
	}
	return ingredient, nil
}

func (s *IngredientService) UpdateIngredient(ctx context.Context, id uint, userID uint, req request_models.IngredientRequest) error {
	if _, err := s.GetIngredient(ctx, id, userID); err != nil {
		return err
	}

	ingredient, err := s.ingredientFromRequest(ctx, userID, req)
	if err != nil {
		return err
	}
	ingredient.ID = id

	return repoError(s.log, "update ingredient", s.ingredientRepo.Update(ctx, ingredient))
}

func (s *IngredientService) DeleteIngredient(ctx context.Context, id uint, userID uint) (int64, error) {
	if _, err := s.GetIngredient(ctx, id, userID); err != nil {
		if errors.Is(err, utils.ErrIngredientNotFound) {
			return 0, nil
		}
		return 0, err
	}

	deleted, err := s.ingredientRepo.Delete(ctx, id)
	if err != nil {
		return 0, repoError(s.log, "delete ingredient", err)
	}
	return deleted, nil
}

func (s *IngredientService) ingredientFromRequest(ctx context.Context, userID uint, req request_models.IngredientRequest) (*dbm.Ingredient, error) {
	if req.Quantity == nil || *req.Quantity <= 0 || req.DishID == 0 || req.ProductID == 0 {
		return nil, utils.ErrInvalidInput
	}

	owned, err := s.ownsDish(ctx, req.DishID, userID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, utils.ErrDishNotFound
	}

	if _, err := s.productRepo.GetByID(ctx, req.ProductID, userID); err != nil {
		return nil, repoError(s.log, "load product for ingredient", err)
	}

	return &dbm.Ingredient{
		ProductID: req.ProductID,
		DishID:    req.DishID,
		Quantity:  decimal.NewFromFloat(*req.Quantity),
	}, nil
}

func (s *IngredientService) ownsDish(ctx context.Context, dishID uint, userID uint) (bool, error) {
	n, err := s.dishRepo.CountOwned(ctx, []uint{dishID}, userID)
	if err != nil {
		return false, repoError(s.log, "check dish owner", err)
	}
	return n == 1, nil
}
