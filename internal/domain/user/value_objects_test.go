//go:build unit

package user_test

import (
	"testing"

	"staybook/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "valid email OK", input: "guest@example.com", want: "guest@example.com"},
		{name: "uppercase is normalized", input: "Guest@Example.COM", want: "guest@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  guest@example.com  ", want: "guest@example.com"},
		{name: "empty NG", input: "", errIs: user.ErrInvalidEmail},
		{name: "missing @ NG", input: "guestexample.com", errIs: user.ErrInvalidEmail},
		{name: "missing domain NG", input: "guest@", errIs: user.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, email.String())
		})
	}
}

func TestNewRole(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "guest role OK", input: "guest"},
		{name: "hotel_manager role OK", input: "hotel_manager"},
		{name: "admin role OK", input: "admin"},
		{name: "unknown role NG", input: "receptionist", errIs: user.ErrInvalidRole},
		{name: "empty role NG", input: "", errIs: user.ErrInvalidRole},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			role, err := user.NewRole(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.input, role.String())
		})
	}
}

func TestRoleCanManageBookings(t *testing.T) {
	assert.False(t, user.RoleGuest.CanManageBookings())
	assert.True(t, user.RoleHotelManager.CanManageBookings())
	assert.True(t, user.RoleAdmin.CanManageBookings())
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid credentials OK", func(t *testing.T) {
		creds, err := user.NewCredentials("guest@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "guest@example.com", creds.Email().String())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("empty password NG", func(t *testing.T) {
		_, err := user.NewCredentials("guest@example.com", "")
		require.ErrorIs(t, err, user.ErrInvalidPassword)
	})
}
