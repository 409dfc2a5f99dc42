package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	mem "mealplanner/pkg/memcache"
)

var Module = fx.Provide(provideRevokedTokens)

const sweepInterval = 10 * time.Minute

// provideRevokedTokens also runs a janitor that drops expired revocations.
func provideRevokedTokens(lc fx.Lifecycle, log *zap.Logger) mem.RevokedTokenStore {
	store := mem.NewRevokedTokens()
	stop := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							log.Debug("swept revoked tokens", zap.Int("removed", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			return nil
		},
	})
	return store
}
