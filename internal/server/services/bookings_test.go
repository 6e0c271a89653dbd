package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/server/models"
)

func TestBookingService_List(t *testing.T) {
	repo := &fakeBookingRepo{
		listing: []models.BookingWithRefs{
			{Booking: models.Booking{ID: "b1"}, UserName: "Ali"},
		},
	}
	s := NewBookingService(repo)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ali", list[0].UserName)
}

func TestBookingService_UpdateStatus(t *testing.T) {
	repo := &fakeBookingRepo{
		updated: &models.BookingWithRefs{Booking: models.Booking{ID: "b1", Status: "confirmed"}},
	}
	s := NewBookingService(repo)

	booking, err := s.UpdateStatus(context.Background(), "b1", "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, "confirmed", repo.lastStatus)
}

func TestBookingService_UpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := &fakeBookingRepo{}
	s := NewBookingService(repo)

	_, err := s.UpdateStatus(context.Background(), "b1", "teleported")
	assert.ErrorIs(t, err, common.ErrorValidation)
	assert.Empty(t, repo.lastStatus, "invalid status never reaches the repository")
}

func TestBookingService_UpdateStatusUnknownID(t *testing.T) {
	s := NewBookingService(&fakeBookingRepo{})

	_, err := s.UpdateStatus(context.Background(), "missing", models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
