package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager_AccessToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests-only", 15*time.Minute, 7*24*time.Hour)

	token, err := manager.GenerateAccessToken("user-123", "test@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "auth-service", claims.Issuer)
}

func TestJWTManager_RefreshToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests-only", 15*time.Minute, 7*24*time.Hour)

	token, err := manager.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	claims, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.NotEmpty(t, claims.ID, "refresh token must carry a jti")
}

func TestJWTManager_RefreshTokensHaveUniqueIDs(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests-only", 15*time.Minute, 7*24*time.Hour)

	first, err := manager.GenerateRefreshToken("user-123")
	require.NoError(t, err)
	second, err := manager.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	firstClaims, err := manager.ValidateRefreshToken(first)
	require.NoError(t, err)
	secondClaims, err := manager.ValidateRefreshToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests-only", -time.Minute, -time.Minute)

	access, err := manager.GenerateAccessToken("user-123", "test@example.com", "user")
	require.NoError(t, err)
	_, err = manager.ValidateAccessToken(access)
	assert.Error(t, err)

	refresh, err := manager.GenerateRefreshToken("user-123")
	require.NoError(t, err)
	_, err = manager.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests-only", 15*time.Minute, 7*24*time.Hour)
	other := NewJWTManager("a-completely-different-secret-key", 15*time.Minute, 7*24*time.Hour)

	token, err := manager.GenerateAccessToken("user-123", "test@example.com", "user")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTManager_AccessTokenIsNotRefreshToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests-only", 15*time.Minute, 7*24*time.Hour)

	access, err := manager.GenerateAccessToken("user-123", "test@example.com", "user")
	require.NoError(t, err)

	// Access tokens carry no jti, so they must be rejected as refresh tokens.
	_, err = manager.ValidateRefreshToken(access)
	assert.Error(t, err)
}

func TestJWTManager_GarbageToken(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-unit-tests-only", 15*time.Minute, 7*24*time.Hour)

	_, err := manager.ValidateAccessToken("not-a-token")
	assert.Error(t, err)

	_, err = manager.ValidateRefreshToken("")
	assert.Error(t, err)
}
