package jwt

import (
	"testing"
	"time"

	"healthcare-backend/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, access time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  access,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessToken(t *testing.T) {
	svc := newService("secret", 15*time.Minute)
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "jane@example.com", "doctor")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "doctor", claims.UserType)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshToken(t *testing.T) {
	svc := newService("secret", 15*time.Minute)

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "jane@example.com", "patient")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := newService("secret", 15*time.Minute)

	other, _, err := newService("other", 15*time.Minute).GenerateAccessToken(uuid.New(), "a@b.c", "patient")
	require.NoError(t, err)
	_, err = svc.ValidateToken(other)
	assert.Error(t, err)

	expired, _, err := newService("secret", -time.Minute).GenerateAccessToken(uuid.New(), "a@b.c", "patient")
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.Error(t, err)

	_, err = svc.ValidateToken("garbage")
	assert.Error(t, err)
}
