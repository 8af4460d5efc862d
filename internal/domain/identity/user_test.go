package identity

import (
	"errors"
	"testing"
	"time"

	"github.com/bazaar/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var birthDate = time.Date(1990, 5, 14, 0, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	t.Run("creates user with valid fields", func(t *testing.T) {
		user, err := NewUser("abc-1_2", "a@gmail.com", "Password123", birthDate, 1)

		require.NoError(t, err)
		assert.Equal(t, "abc-1_2", user.Username)
		assert.Equal(t, "a@gmail.com", user.Email)
		assert.False(t, user.EmailVerified)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "Password123", user.PasswordHash)
		assert.Equal(t, int64(1), user.RoleID)
	})

	t.Run("lowercases email", func(t *testing.T) {
		user, err := NewUser("someone", "A@Gmail.COM", "Password123", birthDate, 1)

		require.NoError(t, err)
		assert.Equal(t, "a@gmail.com", user.Email)
	})

	t.Run("fails when username starts with a hyphen", func(t *testing.T) {
		_, err := NewUser("-abc", "a@gmail.com", "Password123", birthDate, 1)

		require.Error(t, err)
		var verrs shared.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "username", verrs.First().Field)
	})

	t.Run("fails for unsupported email domain", func(t *testing.T) {
		_, err := NewUser("someone", "a@b.com", "Password123", birthDate, 1)

		require.Error(t, err)
		var verrs shared.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "email", verrs.First().Field)
	})

	t.Run("fails without role", func(t *testing.T) {
		_, err := NewUser("someone", "a@gmail.com", "Password123", birthDate, 0)

		assert.Error(t, err)
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("someone", "a@gmail.com", "short", birthDate, 1)

		require.Error(t, err)
		var verr *shared.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "password", verr.Field)
	})
}

func TestUser_CheckPassword(t *testing.T) {
	user, err := NewUser("someone", "a@gmail.com", "Password123", birthDate, 1)
	require.NoError(t, err)

	assert.True(t, user.CheckPassword("Password123"))
	assert.False(t, user.CheckPassword("wrong-password"))
}

func TestUser_SetEmail(t *testing.T) {
	t.Run("resets verification on change", func(t *testing.T) {
		user, err := NewUser("someone", "a@gmail.com", "Password123", birthDate, 1)
		require.NoError(t, err)
		user.VerifyEmail()
		require.True(t, user.EmailVerified)

		require.NoError(t, user.SetEmail("b@yahoo.com"))
		assert.Equal(t, "b@yahoo.com", user.Email)
		assert.False(t, user.EmailVerified)
	})

	t.Run("keeps old email on invalid change", func(t *testing.T) {
		user, err := NewUser("someone", "a@gmail.com", "Password123", birthDate, 1)
		require.NoError(t, err)

		assert.Error(t, user.SetEmail("a@b.com"))
		assert.Equal(t, "a@gmail.com", user.Email)
	})
}

func TestUser_SetFullName(t *testing.T) {
	user, err := NewUser("someone", "a@gmail.com", "Password123", birthDate, 1)
	require.NoError(t, err)

	user.SetFullName("Jane Doe")
	require.NotNil(t, user.FullName)
	assert.Equal(t, "Jane Doe", *user.FullName)

	user.SetFullName("  ")
	assert.Nil(t, user.FullName)
}

func TestNewRole(t *testing.T) {
	t.Run("creates role", func(t *testing.T) {
		role, err := NewRole("customer")

		require.NoError(t, err)
		assert.Equal(t, "customer", role.Name)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewRole("  ")

		assert.Error(t, err)
	})
}
