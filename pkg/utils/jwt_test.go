package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer(t *testing.T, secret string, ttl time.Duration) *TokenIssuer {
	t.Helper()
	issuer, err := NewTokenIssuer(secret, ttl)
	require.NoError(t, err)
	return issuer
}

func TestNewTokenIssuer_RequiresSecret(t *testing.T) {
	_, err := NewTokenIssuer("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSigningKey)
}

func TestTokenIssuer_RejectsEmptyKeySignature(t *testing.T) {
	issuer := newIssuer(t, "secret", time.Hour)
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 1,
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := forged.SignedString([]byte(""))
	require.NoError(t, err)

	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := newIssuer(t, "secret", time.Hour)

	token, expiresAt, err := issuer.CreateToken(42, "admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenIssuer_RejectsForeignOrExpiredTokens(t *testing.T) {
	issuer := newIssuer(t, "secret", time.Hour)
	other := newIssuer(t, "other-secret", time.Hour)

	token, _, err := other.CreateToken(1, "user")
	require.NoError(t, err)
	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)

	expired := newIssuer(t, "secret", time.Nanosecond)
	token, _, err = expired.CreateToken(1, "user")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)
	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)

	_, err = issuer.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsZeroUser(t *testing.T) {
	issuer := newIssuer(t, "secret", time.Hour)
	token, _, err := issuer.CreateToken(0, "user")
	require.NoError(t, err)

	_, err = issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.NoError(t, ComparePasswords(hash, "hunter22"))
	assert.Error(t, ComparePasswords(hash, "hunter23"))
}
