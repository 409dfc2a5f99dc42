package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"mealplanner/cmd/fx/account_fx"
	"mealplanner/cmd/fx/config_fx"
	"mealplanner/cmd/fx/controllers_fx"
	"mealplanner/cmd/fx/db_fx"
	"mealplanner/cmd/fx/dish_fx"
	"mealplanner/cmd/fx/ingredient_fx"
	"mealplanner/cmd/fx/meal_fx"
	"mealplanner/cmd/fx/memcache_fx"
	"mealplanner/cmd/fx/product_fx"
	"mealplanner/internal/config"
	"mealplanner/pkg/logger"
)

func main() {
	defer logger.Sync()

	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		appModules(),
	)
	app.Run()
}

func appModules() fx.Option {
	return fx.Options(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		product_fx.Module,
		dish_fx.Module,
		ingredient_fx.Module,
		meal_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
