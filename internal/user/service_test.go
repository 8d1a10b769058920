package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignUp_CreatesUserLoggedOut(t *testing.T) {
	repo := &MockRepository{}
	service := NewUserService(repo)

	created, err := service.SignUp("Alice", "alice@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.False(t, created.IsLoggedIn)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	repo := &MockRepository{}
	service := NewUserService(repo)

	_, err := service.SignUp("Alice", "alice@example.com")
	assert.NoError(t, err)

	_, err = service.SignUp("Alicja", "alice@example.com")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, repo.Users, 1)
}

func TestSignUp_Validation(t *testing.T) {
	service := NewUserService(&MockRepository{})

	_, err := service.SignUp("", "alice@example.com")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = service.SignUp(strings.Repeat("a", 51), "alice@example.com")
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = service.SignUp("Alice", "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSignIn_SetsFlag(t *testing.T) {
	repo := &MockRepository{}
	service := NewUserService(repo)

	_, err := service.SignUp("Alice", "alice@example.com")
	assert.NoError(t, err)

	signedIn, err := service.SignIn("Alice")
	assert.NoError(t, err)
	assert.True(t, signedIn.IsLoggedIn)
	assert.True(t, repo.Users[0].IsLoggedIn)
}

func TestSignIn_SecondAttemptConflicts(t *testing.T) {
	service := NewUserService(&MockRepository{})

	_, err := service.SignUp("Alice", "alice@example.com")
	assert.NoError(t, err)

	_, err = service.SignIn("Alice")
	assert.NoError(t, err)

	_, err = service.SignIn("Alice")
	assert.ErrorIs(t, err, ErrAlreadyLoggedIn)
}

func TestSignIn_UnknownName(t *testing.T) {
	service := NewUserService(&MockRepository{})

	_, err := service.SignIn("Nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsers_EmptyIsNotNil(t *testing.T) {
	service := NewUserService(&MockRepository{})

	users, err := service.ListUsers()
	assert.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestDeleteUser(t *testing.T) {
	repo := &MockRepository{}
	service := NewUserService(repo)

	created, err := service.SignUp("Alice", "alice@example.com")
	assert.NoError(t, err)

	assert.NoError(t, service.DeleteUser(created.ID))
	assert.Empty(t, repo.Users)

	assert.ErrorIs(t, service.DeleteUser(created.ID), ErrUserNotFound)
}
