package services

import (
	"testing"

	"github.com/appdotbuilder/smart-diet-tracker/utils"

	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser("Alice", "Alice@Example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "alice@example.com", user.Email, "emails are normalized to lower case")
	require.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")
	require.True(t, utils.CheckPasswordHash("s3cret-pass", user.Password))
}

func TestRegisterUserValidation(t *testing.T) {
	setupTestDB(t)

	_, err := RegisterUser("", "a@example.com", "password")
	require.ErrorIs(t, err, ErrValidation)

	_, err = RegisterUser("Alice", "", "password")
	require.ErrorIs(t, err, ErrValidation)

	_, err = RegisterUser("Alice", "a@example.com", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	_, err := RegisterUser("Alice", "dup@example.com", "password-one")
	require.NoError(t, err)

	_, err = RegisterUser("Other Alice", "dup@example.com", "password-two")
	require.Error(t, err, "unique email constraint must surface")
}

func TestAuthenticateUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	setupTestDB(t)

	_, err := RegisterUser("Alice", "login@example.com", "s3cret-pass")
	require.NoError(t, err)

	token, err := AuthenticateUser("login@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = AuthenticateUser("login@example.com", "wrong-pass")
	require.Error(t, err)

	_, err = AuthenticateUser("nobody@example.com", "s3cret-pass")
	require.Error(t, err)
}
