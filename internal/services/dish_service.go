package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	dbm "mealplanner/internal/models/db_models"
	"mealplanner/internal/models/request_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/internal/repositories"
	"mealplanner/pkg/utils"
)

type DishServiceInterface interface {
	CreateDish(ctx context.Context, userID uint, req request_models.CreateDishRequest) (uint, error)
	ListDishes(ctx context.Context, userID uint, cursor *uint, limit int, search string) ([]resp.Dish, error)
	GetDish(ctx context.Context, id uint, userID uint) (*resp.Dish, error)
	UpdateDish(ctx context.Context, id uint, userID uint, req request_models.CreateDishRequest) error
	PatchDish(ctx context.Context, id uint, userID uint, req request_models.PatchDishRequest) error
	DeleteDish(ctx context.Context, id uint, userID uint) (int64, error)
}

type DishService struct {
	dishRepo repositories.DishRepository
	log      *zap.Logger
}

func NewDishService(dishRepo repositories.DishRepository, log *zap.Logger) DishServiceInterface {
	return &DishService{
		dishRepo: dishRepo,
		log:      log.Named("dish_service"),
	}
}

func (s *DishService) CreateDish(ctx context.Context, userID uint, req request_models.CreateDishRequest) (uint, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, utils.ErrInvalidInput
	}

	id, err := s.dishRepo.Create(ctx, &dbm.Dish{
		Name:     name,
		Recipe:   req.Recipe,
		ImageURL: strings.TrimSpace(req.ImageURL),
		UserID:   userID,
	})
	if err != nil {
		return 0, repoError(s.log, "create dish", err)
	}
	return id, nil
}

func (s *DishService) ListDishes(ctx context.Context, userID uint, cursor *uint, limit int, search string) ([]resp.Dish, error) {
	dishes, err := s.dishRepo.Get(ctx, cursor, limit, repositories.DishQuery{
		UserID:     userID,
		SearchName: search,
	})
	if err != nil {
		return nil, repoError(s.log, "list dishes", err)
	}
	return dishes, nil
}

func (s *DishService) GetDish(ctx context.Context, id uint, userID uint) (*resp.Dish, error) {
	dish, err := s.dishRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, repoError(s.log, "get dish", err)
	}
	return dish, nil
}

func (s *DishService) UpdateDish(ctx context.Context, id uint, userID uint, req request_models.CreateDishRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return utils.ErrInvalidInput
	}

	err := s.dishRepo.Update(ctx, &dbm.Dish{
		BaseModel: dbm.BaseModel{ID: id},
		Name:      name,
		Recipe:    req.Recipe,
		ImageURL:  strings.TrimSpace(req.ImageURL),
	}, userID)
	return repoError(s.log, "update dish", err)
}

func (s *DishService) PatchDish(ctx context.Context, id uint, userID uint, req request_models.PatchDishRequest) error {
	in := repositories.PatchDishInput{ID: id, Recipe: req.Recipe, ImageURL: req.ImageURL}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return utils.ErrInvalidInput
		}
		in.Name = &name
	}
	return repoError(s.log, "patch dish", s.dishRepo.UpdatePatch(ctx, in, userID))
}

func (s *DishService) DeleteDish(ctx context.Context, id uint, userID uint) (int64, error) {
	deleted, err := s.dishRepo.Delete(ctx, id, userID)
	if err != nil {
		return 0, repoError(s.log, "delete dish", err)
	}
	return deleted, nil
}
