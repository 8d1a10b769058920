package user

import (
	"errors"
	"strings"
	"time"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"

	apperrors "github.com/pkarczmarek/FinanceTracker/internal/finance/errors"
)

const maxNameLength = 50

var (
	ErrNameRequired  = errors.New("name is required")
	ErrNameTooLong   = errors.New("name must be at most 50 characters")
	ErrInvalidEmail  = errors.New("email address is not valid")
	ErrInternalError = errors.New("internal server error")

	// Conflict sentinels carry the shared conflict type so callers can match
	// either the specific error or the category.
	ErrEmailAlreadyExists = apperrors.NewConflictError("email already exists")
	ErrAlreadyLoggedIn    = apperrors.NewConflictError("user already signed in")
)

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	IsLoggedIn bool      `json:"isLoggedIn"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Service interface {
	SignUp(name, email string) (*User, error)
	SignIn(name string) (*User, error)
	ListUsers() ([]User, error)
	DeleteUser(id string) error
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

// There is no password here: accounts are identified by name/email only,
// and the is_logged_in flag is the entire session model.

func (s *service) SignUp(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > maxNameLength {
		return nil, ErrNameTooLong
	}
	if err := checkmail.ValidateFormat(email); err != nil {
		return nil, ErrInvalidEmail
	}

	user := &User{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		IsLoggedIn: false,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.createUser(user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, ErrInternalError
	}
	return user, nil
}

// SignIn flips is_logged_in from false to true as one atomic unit; a second
// concurrent sign-in for the same user loses the race and gets
// ErrAlreadyLoggedIn. Nothing ever resets the flag server-side.
func (s *service) SignIn(name string) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	user, err := s.repo.signInByName(name)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrAlreadyLoggedIn) {
			return nil, err
		}
		return nil, ErrInternalError
	}
	return user, nil
}

func (s *service) ListUsers() ([]User, error) {
	users, err := s.repo.getAllUsers()
	if err != nil {
		return nil, ErrInternalError
	}
	if users == nil {
		return []User{}, nil
	}
	return users, nil
}

// DeleteUser hard-deletes the user record only. Income, expense and budget
// records keep their userId and become orphans.
func (s *service) DeleteUser(id string) error {
	err := s.repo.deleteByID(id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return ErrInternalError
	}
	return nil
}
