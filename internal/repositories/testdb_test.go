package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mealplanner/internal/infra"
	dbm "mealplanner/internal/models/db_models"
)

// newTestDB opens a private in-memory SQLite database with foreign keys on and
// the full schema migrated. One connection keeps the database alive and
// serializes transactions.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return db
}

type fixture struct {
	t   *testing.T
	ctx context.Context
	db  *gorm.DB

	users       UserRepository
	products    ProductRepository
	dishes      DishRepository
	ingredients IngredientRepository
	meals       MealRepository
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	return &fixture{
		t:           t,
		ctx:         context.Background(),
		db:          db,
		users:       NewUserRepository(db),
		products:    NewProductRepository(db),
		dishes:      NewDishRepository(db),
		ingredients: NewIngredientRepository(db),
		meals:       NewMealRepository(db),
	}
}

func (f *fixture) user(name string) uint {
	u := &dbm.User{
		Username:     name,
		Email:        fmt.Sprintf("%s@example.com", name),
		PasswordHash: "x",
		Role:         dbm.RoleUser,
	}
	require.NoError(f.t, f.users.Create(f.ctx, u))
	return u.ID
}

func (f *fixture) product(userID uint, name string, measure dbm.Measure, price string) uint {
	id, err := f.products.Create(f.ctx, &dbm.Product{
		Name:    name,
		Measure: measure,
		Price:   decimal.RequireFromString(price),
		UserID:  userID,
	})
	require.NoError(f.t, err)
	return id
}

func (f *fixture) dish(userID uint, name string) uint {
	id, err := f.dishes.Create(f.ctx, &dbm.Dish{Name: name, Recipe: name + " recipe", UserID: userID})
	require.NoError(f.t, err)
	return id
}

func (f *fixture) ingredient(dishID, productID uint, quantity string) uint {
	id, err := f.ingredients.Create(f.ctx, &dbm.Ingredient{
		DishID:    dishID,
		ProductID: productID,
		Quantity:  decimal.RequireFromString(quantity),
	})
	require.NoError(f.t, err)
	return id
}

func (f *fixture) meal(userID uint, name string, start, end time.Time, dishIDs ...uint) uint {
	id, err := f.meals.Create(f.ctx, CreateMealInput{
		UserID:    userID,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		DishIDs:   dishIDs,
	})
	require.NoError(f.t, err)
	return id
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 12, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }
