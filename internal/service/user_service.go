package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MasteriNeuron/ToDo-List-Project/internal/auth"
	dom "github.com/MasteriNeuron/ToDo-List-Project/internal/domain"
	"github.com/MasteriNeuron/ToDo-List-Project/internal/repo"
	"github.com/MasteriNeuron/ToDo-List-Project/internal/utils"

	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrMissingFields      = errors.New("username, email and password are required")
)

// UserService handles registration and authentication.
type UserService struct {
	repo   repo.UserRepo
	hasher *auth.Hasher
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, hasher *auth.Hasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

// Register creates a new user with a hashed password. Username is checked
// before email so a dual conflict always reports the username. The
// pre-checks are advisory only; the users table's unique constraints close
// the race between concurrent duplicate registrations.
func (s *UserService) Register(ctx context.Context, username, email, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return dom.User{}, ErrMissingFields
	}
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return dom.User{}, ErrUsernameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return dom.User{}, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return dom.User{}, err
	}
	u, err := s.repo.Create(ctx, username, email, hash)
	if err != nil {
		if name, ok := utils.PGUniqueViolation(err); ok {
			if strings.Contains(name, "email") {
				return dom.User{}, ErrEmailTaken
			}
			return dom.User{}, ErrUsernameTaken
		}
		return dom.User{}, err
	}
	return u, nil
}

// Authenticate checks username and password; returns the user if valid.
// An unknown username and a wrong password yield the same error, so a
// caller cannot probe which usernames exist.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (dom.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.User{}, ErrInvalidCredentials
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrInvalidCredentials
		}
		return dom.User{}, err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return dom.User{}, ErrInvalidCredentials
	}
	return u, nil
}
