package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/VishnuDileesh/todo-api/internal/auth"
	"github.com/VishnuDileesh/todo-api/internal/domain"
	"github.com/VishnuDileesh/todo-api/internal/repo"
)

// ErrInvalidCredentials collapses unknown email and wrong password into
// one error so login never leaks which check failed.
var ErrInvalidCredentials = errors.New("email or password is incorrect")

// UserService handles registration and credential checks.
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Register hashes the password and stores the account. It does not check
// for an existing account with the same email; duplicates are accepted.
func (s *UserService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}
	u, err := s.repo.Create(ctx, strings.TrimSpace(username), strings.TrimSpace(email), hash)
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// ValidateCredentials checks email and password and returns the user if
// they match.
func (s *UserService) ValidateCredentials(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return domain.User{}, ErrInvalidCredentials
	}
	return u, nil
}
