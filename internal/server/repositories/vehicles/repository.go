package vehicles

import (
	"context"

	"github.com/roadfleet/roadfleet/internal/server/models"
)

// VehiclePatch applies a partial edit; nil fields stay unchanged.
type VehiclePatch struct {
	Name        *string
	Brand       *string
	VehicleType *string
	Location    *string
	Seats       *int
	Features    []string
	Image       *string
	RentalPlans []models.RentalPlan
	Status      *string
}

type Repository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error)
	Get(ctx context.Context, id string) (*models.Vehicle, error)

	// List returns one page matching filter plus the total match count.
	List(ctx context.Context, filter models.VehicleFilter, limit, offset int) (models.VehiclePage, error)

	Update(ctx context.Context, id string, patch VehiclePatch) (*models.Vehicle, error)
	Delete(ctx context.Context, id string) error
}
