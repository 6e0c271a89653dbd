package users

import (
	"context"

	"github.com/roadfleet/roadfleet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)

	// List returns customer accounts (role=user), newest first.
	List(ctx context.Context) ([]models.User, error)

	// UpdateDetails applies the non-nil fields of patch and returns the
	// updated row.
	UpdateDetails(ctx context.Context, id string, patch models.UserDetailsPatch) (*models.User, error)

	Delete(ctx context.Context, id string) error
}
