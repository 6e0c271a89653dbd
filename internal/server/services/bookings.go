package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/server/models"
	"github.com/roadfleet/roadfleet/internal/server/repositories/bookings"
)

// BookingService exposes the admin view of the booking ledger.
type BookingService struct {
	repo bookings.Repository
}

func NewBookingService(repo bookings.Repository) *BookingService {
	return &BookingService{repo: repo}
}

func (s *BookingService) List(ctx context.Context) ([]models.BookingWithRefs, error) {
	list, err := s.repo.ListWithRefs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	return list, nil
}

// UpdateStatus moves a booking to status and returns the updated joined row.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status string) (*models.BookingWithRefs, error) {
	if !slices.Contains(models.BookingStatuses, status) {
		return nil, fmt.Errorf("%w: unknown booking status %q", common.ErrorValidation, status)
	}

	booking, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	return booking, nil
}
