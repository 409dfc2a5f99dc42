package repositories

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbm "mealplanner/internal/models/db_models"
	"mealplanner/pkg/utils"
)

type ProductQuery struct {
	UserID     uint
	SearchName string
}

// PatchProductInput updates only the non-nil fields.
type PatchProductInput struct {
	ID      uint
	Name    *string
	Measure *dbm.Measure
	Price   *decimal.Decimal
	Emoji   *string
}

type ProductRepository interface {
	Create(ctx context.Context, product *dbm.Product) (uint, error)
	Get(ctx context.Context, cursor *uint, limit int, query ProductQuery) ([]dbm.Product, error)
	GetByID(ctx context.Context, id uint, userID uint) (*dbm.Product, error)
	Update(ctx context.Context, product *dbm.Product, userID uint) error
	UpdatePatch(ctx context.Context, in PatchProductInput, userID uint) error
	Delete(ctx context.Context, id uint, userID uint) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *dbm.Product) (uint, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}

func (r *productRepository) Get(ctx context.Context, cursor *uint, limit int, query ProductQuery) ([]dbm.Product, error) {
	products := make([]dbm.Product, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", query.UserID).
		Scopes(nameContains("name", query.SearchName), cursorPage("id", cursor, limit)).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint, userID uint) (*dbm.Product, error) {
	var product dbm.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, product *dbm.Product, userID uint) error {
	res := r.db.WithContext(ctx).
		Model(&dbm.Product{}).
		Where("id = ? AND user_id = ?", product.ID, userID).
		Updates(map[string]interface{}{
			"name":    product.Name,
			"measure": product.Measure,
			"price":   product.Price,
			"emoji":   product.Emoji,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) UpdatePatch(ctx context.Context, in PatchProductInput, userID uint) error {
	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Measure != nil {
		updates["measure"] = *in.Measure
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Emoji != nil {
		// an explicit empty emoji clears the column
		if *in.Emoji == "" {
			updates["emoji"] = nil
		} else {
			updates["emoji"] = *in.Emoji
		}
	}

	scoped := r.db.WithContext(ctx).Model(&dbm.Product{}).Where("id = ? AND user_id = ?", in.ID, userID)
	if len(updates) == 0 {
		return requireRow(scoped, utils.ErrProductNotFound)
	}

	res := scoped.Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&dbm.Product{})
	return res.RowsAffected, res.Error
}

// requireRow returns notFound when the scoped query matches nothing.
func requireRow(scoped *gorm.DB, notFound error) error {
	var count int64
	if err := scoped.Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return notFound
	}
	return nil
}
