package account_fx

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"mealplanner/internal/config"
	"mealplanner/internal/repositories"
	"mealplanner/internal/services"
	mem "mealplanner/pkg/memcache"
	"mealplanner/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo, provideTokenIssuer)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideTokenIssuer(cfg *config.Config) (*utils.TokenIssuer, error) {
	issuer, err := utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return nil, fmt.Errorf("token issuer: %w (set JWT_SECRET)", err)
	}
	return issuer, nil
}

func provideAccountService(
	userRepo repositories.UserRepository,
	issuer *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, issuer, revoked, log)
}
