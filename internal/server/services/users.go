package services

import (
	"context"
	"fmt"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/server/models"
	"github.com/roadfleet/roadfleet/internal/server/repositories/users"
)

// cnicLength is the number of digits in a national identity number.
const cnicLength = 13

// UserService manages customer accounts from the admin side.
type UserService struct {
	repo users.Repository
}

func NewUserService(repo users.Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

func validCNIC(cnic string) bool {
	if len(cnic) != cnicLength {
		return false
	}
	for _, r := range cnic {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UpdateDetails applies the non-nil fields of patch to the account.
func (s *UserService) UpdateDetails(ctx context.Context, id string, patch models.UserDetailsPatch) (*models.User, error) {
	if patch.CNIC != nil && !validCNIC(*patch.CNIC) {
		return nil, fmt.Errorf("%w: cnic must be exactly %d digits", common.ErrorValidation, cnicLength)
	}
	if patch.Status != nil &&
		*patch.Status != models.UserStatusActive && *patch.Status != models.UserStatusBlocked {
		return nil, fmt.Errorf("%w: unknown user status %q", common.ErrorValidation, *patch.Status)
	}

	user, err := s.repo.UpdateDetails(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
