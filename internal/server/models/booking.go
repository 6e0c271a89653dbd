package models

import "time"

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// BookingStatuses enumerates the accepted booking states.
var BookingStatuses = []string{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
}

type Booking struct {
	ID             string
	UserID         string
	VehicleID      string
	RentalPlanName string
	StartDate      time.Time
	EndDate        time.Time
	IncludeDriver  bool
	Price          float64
	Status         string
	PickupLocation string
	DropLocation   string
	CreatedAt      time.Time
}

// BookingWithRefs is a booking joined with the display fields of its user
// and vehicle, as the admin listing returns them.
type BookingWithRefs struct {
	Booking
	UserName           string
	VehicleBrand       string
	VehicleVehicleType string
}
