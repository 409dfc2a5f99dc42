package infra

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mealplanner/internal/config"
	"mealplanner/internal/models/db_models"
)

// InitPostgresql opens the shared pool. Every repository receives this handle;
// nothing holds a private connection.
func InitPostgresql(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.DB.DSN), &gorm.Config{
		Logger:         NewGormLogger(log, cfg.Env),
		TranslateError: true,
	})
	if err != nil {
		log.Error("Error connecting to database", zap.Error(err))
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	sqlDB, err := connectionPool.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	return connectionPool, nil
}

// NewGormLogger routes gorm's SQL log through zap.
func NewGormLogger(log *zap.Logger, env string) gormlogger.Interface {
	level := gormlogger.Warn
	if env != "production" {
		level = gormlogger.Info
	}
	return gormlogger.New(
		zap.NewStdLog(log.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// Migrate creates or updates every table, including the FK cascades and the
// meal_dishes unique key.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(db_models.All()...)
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("Error closing database connection", zap.Error(err))
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}

// WithTransaction runs fn inside one transaction bound to ctx. The transaction
// commits when fn returns nil and rolls back on error or panic.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
