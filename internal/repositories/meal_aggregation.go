package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	resp "mealplanner/internal/models/response_models"
)

// defaultMeasure labels aggregated lines whose product has no measure.
const defaultMeasure = "unit"

type aggregatedRow struct {
	ProductID     uint            `gorm:"column:product_id"`
	ProductName   string          `gorm:"column:product_name"`
	Measure       *string         `gorm:"column:measure"`
	Price         decimal.Decimal `gorm:"column:price"`
	TotalQuantity decimal.Decimal `gorm:"column:total_quantity"`
}

// GetAggregatedIngredients sums ingredient quantities per product across every
// dish linked to the given meals of userID, in one grouped query. Meals of other
// users and dishes without ingredients contribute nothing.
func (r *mealRepository) GetAggregatedIngredients(ctx context.Context, mealIDs []uint, userID uint) ([]resp.AggregatedIngredient, error) {
	out := make([]resp.AggregatedIngredient, 0)
	ids := UniqueIDs(mealIDs)
	if len(ids) == 0 {
		return out, nil
	}

	var rows []aggregatedRow
	err := r.db.WithContext(ctx).
		Table("meals AS m").
		Select(`p.id AS product_id, p.name AS product_name, p.measure AS measure, p.price AS price,
			SUM(i.quantity) AS total_quantity`).
		Joins("JOIN meal_dishes md ON md.meal_id = m.id").
		Joins("JOIN dishes d ON d.id = md.dish_id").
		Joins("LEFT JOIN ingredients i ON i.dish_id = d.id").
		Joins("LEFT JOIN products p ON p.id = i.product_id").
		Where("m.id IN ? AND m.user_id = ?", ids, userID).
		Where("i.id IS NOT NULL AND p.id IS NOT NULL").
		Group("p.id, p.name, p.measure, p.price").
		Order("p.name ASC, p.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		measure := defaultMeasure
		if row.Measure != nil && *row.Measure != "" {
			measure = *row.Measure
		}
		out = append(out, resp.AggregatedIngredient{
			ProductID:     row.ProductID,
			ProductName:   row.ProductName,
			Measure:       measure,
			Price:         row.Price.InexactFloat64(),
			TotalQuantity: row.TotalQuantity.InexactFloat64(),
		})
	}
	return out, nil
}
