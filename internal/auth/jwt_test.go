package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangdieu/wedding-invitation/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "couple",
		Role:     models.RoleUser,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateAccessToken(testUser())
	require.NoError(t, err)

	claims, err := VerifyToken(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "couple", claims.Username)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

// A refresh token must never pass as an access token, and vice versa.
func TestTokenTypeDiscriminator(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	refreshToken, err := GenerateRefreshToken(testUser())
	require.NoError(t, err)

	_, err = VerifyToken(refreshToken, TokenTypeAccess)
	assert.Error(t, err)

	_, err = VerifyToken(refreshToken, TokenTypeRefresh)
	assert.NoError(t, err)

	accessToken, err := GenerateAccessToken(testUser())
	require.NoError(t, err)

	_, err = VerifyToken(accessToken, TokenTypeRefresh)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	_, err := VerifyToken("not-a-token", TokenTypeAccess)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateAccessToken(testUser())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	require.NoError(t, InitJWTSecret())

	_, err = VerifyToken(token, TokenTypeAccess)
	assert.Error(t, err)
}
