package db_models

import "time"

// Meal is a scheduled occurrence over [StartDate, EndDate]. Dishes are linked
// only through MealDish rows.
type Meal struct {
	BaseModel
	Name      string    `gorm:"size:255;not null"`
	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time `gorm:"not null;index"`
	UserID    uint      `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// MealDish is the meals <-> dishes junction.
type MealDish struct {
	ID     uint `gorm:"primaryKey"`
	MealID uint `gorm:"not null;uniqueIndex:idx_meal_dish_user"`
	DishID uint `gorm:"not null;uniqueIndex:idx_meal_dish_user"`
	UserID uint `gorm:"not null;uniqueIndex:idx_meal_dish_user"`

	Meal Meal `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE"`
	Dish Dish `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE"`
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (MealDish) TableName() string {
	return "meal_dishes"
}

// All lists every model in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Product{},
		&Dish{},
		&Ingredient{},
		&Meal{},
		&MealDish{},
	}
}
