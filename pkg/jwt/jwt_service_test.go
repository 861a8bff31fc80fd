package jwt

import (
	"Food-Wastage-Management/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorToken(t *testing.T) {
	svc := NewJWTService("s3cret")
	require.True(t, svc.Enabled())

	token, err := svc.GenerateOperatorToken("ops@example.org", time.Hour)
	require.NoError(t, err)

	subject, err := svc.ValidateOperatorToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.org", subject)
}

func TestOperatorTokenRejected(t *testing.T) {
	svc := NewJWTService("s3cret")

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateOperatorToken("ops", -time.Minute)
		require.NoError(t, err)
		_, err = svc.ValidateOperatorToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := NewJWTService("other").GenerateOperatorToken("ops", time.Hour)
		require.NoError(t, err)
		_, err = svc.ValidateOperatorToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("wrong role", func(t *testing.T) {
		claims := jwtOperatorClaim{
			"viewer",
			jwt.RegisteredClaims{
				Issuer:    "FOOD-WASTAGE",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = svc.ValidateOperatorToken(token)
		assert.ErrorIs(t, err, domain.ErrNotOperator)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateOperatorToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}

func TestDisabledService(t *testing.T) {
	svc := NewJWTService("")
	assert.False(t, svc.Enabled())
	_, err := svc.GenerateOperatorToken("ops", time.Hour)
	assert.Error(t, err)
}
