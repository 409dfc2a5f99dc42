package db_models

import "github.com/shopspring/decimal"

type Measure string

const (
	MeasureKg    Measure = "kg"
	MeasureGram  Measure = "gram"
	MeasurePiece Measure = "piece"
)

func (m Measure) Valid() bool {
	switch m {
	case MeasureKg, MeasureGram, MeasurePiece:
		return true
	}
	return false
}

type Product struct {
	BaseModel
	Name    string          `gorm:"size:255;not null;index"`
	Measure Measure         `gorm:"size:16;not null"`
	Price   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Emoji   *string         `gorm:"size:16"`
	UserID  uint            `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
