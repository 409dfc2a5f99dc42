package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"mealplanner/internal/config"
	"mealplanner/pkg/logger"
)

var Module = fx.Provide(provideLogger, provideConfig)

func provideLogger() *zap.Logger {
	return logger.Init(config.GetEnv("ENV", "development"))
}

func provideConfig(log *zap.Logger) *config.Config {
	return config.Load(log)
}
