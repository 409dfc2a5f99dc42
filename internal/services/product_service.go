package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbm "mealplanner/internal/models/db_models"
	"mealplanner/internal/models/request_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/internal/repositories"
	"mealplanner/pkg/utils"
)

type ProductServiceInterface interface {
	CreateProduct(ctx context.Context, userID uint, req request_models.CreateProductRequest) (uint, error)
	ListProducts(ctx context.Context, userID uint, cursor *uint, limit int, search string) ([]resp.Product, error)
	GetProduct(ctx context.Context, id uint, userID uint) (*resp.Product, error)
	UpdateProduct(ctx context.Context, id uint, userID uint, req request_models.CreateProductRequest) error
	PatchProduct(ctx context.Context, id uint, userID uint, req request_models.PatchProductRequest) error
	DeleteProduct(ctx context.Context, id uint, userID uint) (int64, error)
}

type ProductService struct {
	productRepo    repositories.ProductRepository
	ingredientRepo repositories.IngredientRepository
	log            *zap.Logger
}

func NewProductService(
	productRepo repositories.ProductRepository,
	ingredientRepo repositories.IngredientRepository,
	log *zap.Logger,
) ProductServiceInterface {
	return &ProductService{
		productRepo:    productRepo,
		ingredientRepo: ingredientRepo,
		log:            log.Named("product_service"),
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, userID uint, req request_models.CreateProductRequest) (uint, error) {
	product, err := productFromRequest(req)
	if err != nil {
		return 0, err
	}
	product.UserID = userID

	id, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return 0, repoError(s.log, "create product", err)
	}
	return id, nil
}

func (s *ProductService) ListProducts(ctx context.Context, userID uint, cursor *uint, limit int, search string) ([]resp.Product, error) {
	products, err := s.productRepo.Get(ctx, cursor, limit, repositories.ProductQuery{
		UserID:     userID,
		SearchName: search,
	})
	if err != nil {
		return nil, repoError(s.log, "list products", err)
	}

	out := make([]resp.Product, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint, userID uint) (*resp.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, repoError(s.log, "get product", err)
	}
	out := toProductResponse(product)
	return &out, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, userID uint, req request_models.CreateProductRequest) error {
	product, err := productFromRequest(req)
	if err != nil {
		return err
	}
	product.ID = id

	return repoError(s.log, "update product", s.productRepo.Update(ctx, product, userID))
}

func (s *ProductService) PatchProduct(ctx context.Context, id uint, userID uint, req request_models.PatchProductRequest) error {
	in := repositories.PatchProductInput{ID: id, Emoji: req.Emoji}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return utils.ErrInvalidInput
		}
		in.Name = &name
	}
	if req.Measure != nil {
		measure := dbm.Measure(*req.Measure)
		if !measure.Valid() {
			return utils.ErrInvalidInput
		}
		in.Measure = &measure
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return utils.ErrInvalidInput
		}
		price := decimal.NewFromFloat(*req.Price)
		in.Price = &price
	}

	return repoError(s.log, "patch product", s.productRepo.UpdatePatch(ctx, in, userID))
}

// DeleteProduct refuses to remove a product that an ingredient still points at.
// Unknown ids delete nothing and report 0.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint, userID uint) (int64, error) {
	if _, err := s.productRepo.GetByID(ctx, id, userID); err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			return 0, nil
		}
		return 0, repoError(s.log, "load product for delete", err)
	}

	inUse, err := s.ingredientRepo.CountByProduct(ctx, id)
	if err != nil {
		return 0, repoError(s.log, "count product usage", err)
	}
	if inUse > 0 {
		return 0, utils.ErrProductInUse
	}

	deleted, err := s.productRepo.Delete(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, utils.ErrProductInUse
		}
		return 0, repoError(s.log, "delete product", err)
	}
	return deleted, nil
}

func productFromRequest(req request_models.CreateProductRequest) (*dbm.Product, error) {
	name := strings.TrimSpace(req.Name)
	measure := dbm.Measure(req.Measure)
	if name == "" || !measure.Valid() || req.Price == nil || *req.Price < 0 {
		return nil, utils.ErrInvalidInput
	}
	emoji := req.Emoji
	if emoji != nil && *emoji == "" {
		emoji = nil
	}
	return &dbm.Product{
		Name:    name,
		Measure: measure,
		Price:   decimal.NewFromFloat(*req.Price),
		Emoji:   emoji,
	}, nil
}

func toProductResponse(p *dbm.Product) resp.Product {
	return resp.Product{
		ID:      p.ID,
		Name:    p.Name,
		Measure: string(p.Measure),
		Price:   p.Price.InexactFloat64(),
		Emoji:   p.Emoji,
		UserID:  p.UserID,
	}
}
