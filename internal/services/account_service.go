package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	dbm "mealplanner/internal/models/db_models"
	"mealplanner/internal/models/request_models"
	resp "mealplanner/internal/models/response_models"
	"mealplanner/internal/repositories"
	mem "mealplanner/pkg/memcache"
	"mealplanner/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (uint, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*resp.AccountLoginResponse, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID uint, request request_models.ChangePasswordRequest) error
	Me(ctx context.Context, userID uint) (*resp.AccountResponse, error)
	ListAccounts(ctx context.Context, cursor *uint, limit int) ([]resp.AccountResponse, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	issuer   *utils.TokenIssuer
	revoked  mem.RevokedTokenStore
	log      *zap.Logger
}

func NewAccountService(
	userRepo repositories.UserRepository,
	issuer *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		issuer:   issuer,
		revoked:  revoked,
		log:      log.Named("account_service"),
	}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (uint, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))
	username := strings.TrimSpace(request.Username)

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, repoError(a.log, "find account by email", err)
	}
	if existing != nil {
		return 0, utils.ErrEmailAlreadyExists
	}
	existing, err = a.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return 0, repoError(a.log, "find account by username", err)
	}
	if existing != nil {
		return 0, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		a.log.Error("hash password", zap.Error(err))
		return 0, utils.ErrInvalidInput
	}

	user := &dbm.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         dbm.RoleUser,
	}
	if err := a.userRepo.Create(ctx, user); err != nil {
		// a concurrent registration can win between the lookups and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, utils.ErrEmailAlreadyExists
		}
		return 0, repoError(a.log, "create account", err)
	}
	return user.ID, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*resp.AccountLoginResponse, error) {
	startTime := time.Now()

	user, err := a.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		return nil, repoError(a.log, "find account by email", err)
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := a.issuer.CreateToken(user.ID, user.Role)
	if err != nil {
		a.log.Error("sign token", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}

	a.log.Debug("login", zap.Uint("user_id", user.ID), zap.Duration("took", time.Since(startTime)))
	return &resp.AccountLoginResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}

// Logout revokes the token for the rest of its lifetime.
func (a *AccountService) Logout(ctx context.Context, token string) error {
	claims, err := a.issuer.ValidateToken(token)
	if err != nil {
		return utils.ErrUnauthorized
	}
	if claims.ExpiresAt != nil {
		a.revoked.Revoke(token, time.Until(claims.ExpiresAt.Time))
	}
	return nil
}

func (a *AccountService) ChangePassword(ctx context.Context, userID uint, request request_models.ChangePasswordRequest) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return repoError(a.log, "find account by id", err)
	}
	if user == nil {
		return utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.OldPassword); err != nil {
		return utils.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		a.log.Error("hash password", zap.Error(err))
		return utils.ErrInvalidInput
	}
	return repoError(a.log, "update password", a.userRepo.UpdatePasswordHash(ctx, userID, hashedPassword))
}

func (a *AccountService) Me(ctx context.Context, userID uint) (*resp.AccountResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, repoError(a.log, "find account by id", err)
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}
	out := toAccountResponse(user)
	return &out, nil
}

func (a *AccountService) ListAccounts(ctx context.Context, cursor *uint, limit int) ([]resp.AccountResponse, error) {
	users, err := a.userRepo.List(ctx, cursor, limit)
	if err != nil {
		return nil, repoError(a.log, "list accounts", err)
	}
	out := make([]resp.AccountResponse, 0, len(users))
	for i := range users {
		out = append(out, toAccountResponse(&users[i]))
	}
	return out, nil
}

func toAccountResponse(u *dbm.User) resp.AccountResponse {
	return resp.AccountResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
