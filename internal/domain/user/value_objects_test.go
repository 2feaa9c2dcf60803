//go:build unit

package user_test

import (
	"testing"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("accepts and trims a valid address", func(t *testing.T) {
		email, err := user.NewEmail("  waiter@posresto.example  ")
		require.NoError(t, err)
		assert.Equal(t, "waiter@posresto.example", email.Value())
	})

	tests := []struct {
		name  string
		input string
	}{
		{"missing at sign", "waiter.posresto.example"},
		{"missing domain", "waiter@"},
		{"missing tld", "waiter@posresto"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := user.NewEmail(tt.input)
			assert.ErrorIs(t, err, user.ErrInvalidEmail)
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("short password refused", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("eight characters pass", func(t *testing.T) {
		p, err := user.NewPassword("12345678")
		require.NoError(t, err)
		assert.Equal(t, "12345678", p.Value())
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"waiter", "manager", "admin"} {
		t.Run(valid, func(t *testing.T) {
			role, err := user.NewRole(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, role.String())
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := user.NewRole("owner")
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("manager@posresto.example")
	require.NoError(t, err)

	u := user.NewUser(email, "hash", "Maria", user.RoleManager)
	assert.True(t, u.IsActive())
	assert.Equal(t, user.RoleManager, u.Role())
	assert.Nil(t, u.LastLogin())
}
