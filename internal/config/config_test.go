package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_EnvironmentDefaultsAndOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("MAX_PAGE_SIZE", "not-a-number")
	t.Setenv("CONFIG_FILE", "")

	cfg := Load(zap.NewNop())

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL)
	assert.Equal(t, 100, cfg.MaxPageSize)
	assert.Equal(t, 100, cfg.MaxAggregateMealIDs)
	assert.Equal(t, 20, cfg.DefaultPageSize)
}

func TestLoad_YAMLFileWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlDoc := `
port: "7000"
jwt:
  secret: from-file
  ttl: 2h
db:
  dsn: postgres://file
max_aggregate_meal_ids: 10
`
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))
	t.Setenv("PORT", "9090")
	t.Setenv("CONFIG_FILE", path)

	cfg := Load(zap.NewNop())

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, "postgres://file", cfg.DB.DSN)
	assert.Equal(t, 10, cfg.MaxAggregateMealIDs)
	assert.Equal(t, 20, cfg.DefaultPageSize)
}

func TestReadConfig_MissingFile(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, ReadConfig(filepath.Join(t.TempDir(), "nope.yaml"), cfg))
}
