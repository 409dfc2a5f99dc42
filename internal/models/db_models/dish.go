package db_models

// Dish is a recipe. Its ingredient list is not a column: it is rebuilt on read
// from the ingredients table.
type Dish struct {
	BaseModel
	Name     string `gorm:"size:255;not null;index"`
	Recipe   string `gorm:"type:text"`
	ImageURL string `gorm:"column:image_url"`
	UserID   uint   `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
