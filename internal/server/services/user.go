package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/clipsync/internal/common"
	"github.com/dmitrijs2005/clipsync/internal/server/models"
	"github.com/dmitrijs2005/clipsync/internal/server/repositories/users"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles registration and credential checks.
type UserService struct {
	repo              users.Repository
	auth              *AuthService
	minPasswordLength int
}

func NewUserService(repo users.Repository, auth *AuthService, minPasswordLength int) *UserService {
	return &UserService{repo: repo, auth: auth, minPasswordLength: minPasswordLength}
}

// Register creates an account and returns a fresh token pair so the new user
// is signed in immediately. The password is stored as a bcrypt hash only.
func (s *UserService) Register(ctx context.Context, username string, password string) (*models.User, *TokenPair, error) {
	if len(password) < s.minPasswordLength {
		return nil, nil, common.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &models.User{Username: username, PasswordHash: string(hash)})
	if err != nil {
		return nil, nil, err
	}

	pair, err := s.auth.IssuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login verifies the username/password pair and returns a new token pair.
// An unknown username and a wrong password are indistinguishable to the
// caller: both map to ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username string, password string) (*models.User, *TokenPair, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) || errors.Is(err, common.ErrUserNotFound) {
			return nil, nil, common.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, common.ErrInvalidCredentials
	}

	pair, err := s.auth.IssuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
