package bookings

import (
	"context"

	"github.com/roadfleet/roadfleet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)

	// ListWithRefs returns every booking joined with the display fields of
	// its user and vehicle, newest first.
	ListWithRefs(ctx context.Context) ([]models.BookingWithRefs, error)

	// UpdateStatus sets a booking's status and returns the joined row.
	UpdateStatus(ctx context.Context, id string, status string) (*models.BookingWithRefs, error)
}
