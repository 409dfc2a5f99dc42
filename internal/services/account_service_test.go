package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	dbm "mealplanner/internal/models/db_models"
	"mealplanner/internal/models/request_models"
	"mealplanner/internal/repositories"
	mem "mealplanner/pkg/memcache"
	"mealplanner/pkg/utils"
)

func TestAccountService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	id := env.register(t, "alice")

	_, err := env.accounts.Register(env.ctx, request_models.RegisterRequest{
		Username: "alice2", Email: "ALICE@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	_, err = env.accounts.Register(env.ctx, request_models.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	login, err := env.accounts.Login(env.ctx, request_models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	claims, err := env.issuer.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "user", claims.Role)

	_, err = env.accounts.Login(env.ctx, request_models.LoginRequest{Email: "alice@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = env.accounts.Login(env.ctx, request_models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_LogoutRevokesToken(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "alice")

	login, err := env.accounts.Login(env.ctx, request_models.LoginRequest{Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, env.accounts.Logout(env.ctx, login.Token))
	assert.True(t, env.revoked.IsRevoked(login.Token))

	assert.ErrorIs(t, env.accounts.Logout(env.ctx, "garbage"), utils.ErrUnauthorized)
}

func TestAccountService_ChangePasswordAndMe(t *testing.T) {
	env := newTestEnv(t)
	id := env.register(t, "alice")

	err := env.accounts.ChangePassword(env.ctx, id, request_models.ChangePasswordRequest{OldPassword: "nope", NewPassword: "secret2"})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	require.NoError(t, env.accounts.ChangePassword(env.ctx, id, request_models.ChangePasswordRequest{OldPassword: "secret1", NewPassword: "secret2"}))

	_, err = env.accounts.Login(env.ctx, request_models.LoginRequest{Email: "alice@example.com", Password: "secret2"})
	require.NoError(t, err)

	me, err := env.accounts.Me(env.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)

	_, err = env.accounts.Me(env.ctx, id+99)
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)

	accounts, err := env.accounts.ListAccounts(env.ctx, nil, 10)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

// collidingUsers sees no existing account but loses the insert to a unique index.
type collidingUsers struct {
	repositories.UserRepository
}

func (collidingUsers) FindByEmail(context.Context, string) (*dbm.User, error) { return nil, nil }
func (collidingUsers) FindByUsername(context.Context, string) (*dbm.User, error) { return nil, nil }
func (collidingUsers) Create(context.Context, *dbm.User) error { return gorm.ErrDuplicatedKey }

func TestAccountService_RegisterLosesInsertRace(t *testing.T) {
	issuer, err := utils.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)
	svc := NewAccountService(collidingUsers{}, issuer, mem.NewRevokedTokens(), zap.NewNop())

	_, err = svc.Register(context.Background(), request_models.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.NotErrorIs(t, err, utils.ErrDatabaseError)
}
