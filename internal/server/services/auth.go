// Package services implements the application logic behind the admin API.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/cryptox"
	"github.com/roadfleet/roadfleet/internal/server/auth"
	"github.com/roadfleet/roadfleet/internal/server/config"
	"github.com/roadfleet/roadfleet/internal/server/models"
	"github.com/roadfleet/roadfleet/internal/server/repositories/users"
)

// AuthService authenticates admin accounts and issues bearer tokens.
type AuthService struct {
	repo                  users.Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewAuthService(repo users.Repository, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Login verifies the password and admin role, then returns a signed token
// together with the account. Wrong email, wrong password and non-admin role
// all map to the same ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, email string, password string) (string, *models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorUnauthorized
		}
		return "", nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword([]byte(password), user.PasswordSalt, user.PasswordHash) {
		return "", nil, common.ErrorUnauthorized
	}

	if user.Role != models.RoleAdmin {
		return "", nil, common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Role, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, user, nil
}

// Register creates an account with the given role. Used by seeding and by
// tests; the public API does not expose admin self-registration.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*models.User, error) {
	salt := common.GenerateRandByteArray(32)

	user := &models.User{
		Name:         name,
		Email:        email,
		Role:         role,
		Status:       models.UserStatusActive,
		PasswordSalt: salt,
		PasswordHash: cryptox.HashPassword([]byte(password), salt),
	}

	user, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}
