package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "lebonmeeple/pkg/errors"
)

const testSecret = "secret-de-test"

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour*2, time.Hour*24*7)

	access, refresh, err := svc.GenerateTokens(42, "testuser", "testuser@gmail.com", []string{"USER"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, "testuser@gmail.com", claims.Email)
	assert.Equal(t, []string{"USER"}, claims.Roles)
	assert.False(t, claims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestAccessTokenLifetime(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour*2, time.Hour*24*7)

	access, _, err := svc.GenerateTokens(1, "u", "u@example.com", nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)

	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour*2, lifetime)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	svc := NewJWTService(testSecret, -time.Minute, time.Hour)

	access, _, err := svc.GenerateTokens(1, "u", "u@example.com", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenSignedWithOtherKeyIsRejected(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, time.Hour)
	other := NewJWTService("autre-secret", time.Hour, time.Hour)

	access, _, err := other.GenerateTokens(1, "u", "u@example.com", nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, time.Hour)

	_, err := svc.ValidateToken("pas-un-jeton")
	assert.Error(t, err)
}
