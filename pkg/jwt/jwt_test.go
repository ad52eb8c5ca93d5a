package jwt

import (
	"testing"
	"time"

	"kbeauty-insider/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret})
}

func TestGenerateAndValidate(t *testing.T) {
	service := newTestService("test-secret")
	userID := uuid.New()

	token, err := service.Generate(userID, "admin@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestValidateToken_Invalid(t *testing.T) {
	service := newTestService("test-secret")
	userID := uuid.New()

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := newTestService("other-secret")
		token, err := other.Generate(userID, "", time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := service.Generate(userID, "", -time.Minute)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("missing user identity", func(t *testing.T) {
		token, err := service.Generate(uuid.Nil, "", time.Hour)
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})
}
