package db_models

import "github.com/shopspring/decimal"

// Ingredient says a dish needs Quantity units (in the product's measure) of a product.
type Ingredient struct {
	BaseModel
	ProductID uint            `gorm:"not null;index"`
	DishID    uint            `gorm:"not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(12,3);not null"`

	// Products referenced by an ingredient cannot be removed. NO ACTION is checked at
	// the end of the statement, so a user delete cascading through both sides passes.
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:NO ACTION"`
	Dish    Dish    `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
}
