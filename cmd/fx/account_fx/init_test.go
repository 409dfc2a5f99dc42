package account_fx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mealplanner/internal/config"
	"mealplanner/pkg/utils"
)

func TestProvideTokenIssuer_FailsWithoutSecret(t *testing.T) {
	cfg := &config.Config{JWT: config.JWTConfig{TTL: time.Hour}}

	issuer, err := provideTokenIssuer(cfg)
	assert.Nil(t, issuer)
	assert.ErrorIs(t, err, utils.ErrMissingSigningKey)

	cfg.JWT.Secret = "configured"
	issuer, err = provideTokenIssuer(cfg)
	require.NoError(t, err)
	assert.NotNil(t, issuer)
}
