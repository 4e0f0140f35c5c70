//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *jwt.Service {
	return jwt.NewService("test-secret", 15*time.Minute, 168*time.Hour)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(userID, user.RoleHotelManager)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	t.Run("access token carries identity and role", func(t *testing.T) {
		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "hotel_manager", claims.Role)
	})

	t.Run("refresh token validates as refresh", func(t *testing.T) {
		claims, err := svc.ValidateRefreshToken(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("token types are not interchangeable", func(t *testing.T) {
		_, err := svc.ValidateAccessToken(pair.RefreshToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)

		_, err = svc.ValidateRefreshToken(pair.AccessToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := jwt.NewService("other-secret", 15*time.Minute, 168*time.Hour)
		otherPair, err := other.GenerateTokenPair(userID, user.RoleGuest)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(otherPair.AccessToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExpiredToken(t *testing.T) {
	svc := jwt.NewService("test-secret", -time.Minute, -time.Minute)
	pair, err := svc.GenerateTokenPair(uuid.New(), user.RoleGuest)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	require.ErrorIs(t, err, jwt.ErrExpiredToken)
}
