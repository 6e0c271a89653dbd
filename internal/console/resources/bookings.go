package resources

import (
	"context"
	"strings"

	"github.com/roadfleet/roadfleet/internal/console/api"
	"github.com/roadfleet/roadfleet/internal/console/syncstore"
)

// BookingRow is the display shape of one booking: nested references joined
// into flat strings, absent fields replaced by stated fallbacks.
type BookingRow struct {
	BookingID      string
	UserName       string
	Vehicle        string
	RentalPlan     string
	StartDate      string
	EndDate        string
	IncludeDriver  string
	Price          float64
	Status         string
	PickupLocation string
	DropLocation   string
}

// NormalizeBooking maps a wire booking into its display row. Pure and
// idempotent: fallbacks and formatted dates survive a second pass intact.
func NormalizeBooking(b api.Booking) BookingRow {
	userName := fallbackUnknown
	if b.User != nil {
		userName = orFallback(b.User.Name, fallbackUnknown)
	}

	vehicle := fallbackUnknownVehicle
	if b.Vehicle != nil {
		label := strings.TrimSpace(strings.TrimSpace(b.Vehicle.Brand) + " " + strings.TrimSpace(b.Vehicle.VehicleType))
		vehicle = orFallback(label, fallbackUnknownVehicle)
	}

	plan := fallbackNA
	if b.RentalPlan != nil {
		plan = orFallback(b.RentalPlan.Name, fallbackNA)
	}

	driver := "No"
	if b.IncludeDriver {
		driver = "Yes"
	}

	return BookingRow{
		BookingID:      b.ID,
		UserName:       userName,
		Vehicle:        vehicle,
		RentalPlan:     plan,
		StartDate:      formatTimestamp(b.StartDate, displayDateTime),
		EndDate:        formatTimestamp(b.EndDate, displayDateTime),
		IncludeDriver:  driver,
		Price:          b.Price,
		Status:         orFallback(b.Status, "pending"),
		PickupLocation: orFallback(b.PickupLocation, fallbackNA),
		DropLocation:   orFallback(b.DropLocation, fallbackNA),
	}
}

// Bookings is the sync store for the booking collection.
type Bookings struct {
	client api.Client
	col    *syncstore.Collection[BookingRow]
}

func NewBookings(client api.Client) *Bookings {
	return &Bookings{
		client: client,
		col:    syncstore.NewCollection(func(b BookingRow) string { return b.BookingID }),
	}
}

// FetchAll replaces the cached bookings with the normalized server state.
func (b *Bookings) FetchAll(ctx context.Context) error {
	_, err := b.col.Fetch(ctx, func(ctx context.Context) ([]BookingRow, error) {
		raw, err := b.client.ListBookings(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]BookingRow, 0, len(raw))
		for _, booking := range raw {
			rows = append(rows, NormalizeBooking(booking))
		}
		return rows, nil
	})
	return err
}

// UpdateStatus changes one booking's status and patches the cached row in
// place; no refetch.
func (b *Bookings) UpdateStatus(ctx context.Context, id string, status string) error {
	return b.col.Update(ctx, id, func(ctx context.Context) (BookingRow, error) {
		updated, err := b.client.UpdateBookingStatus(ctx, id, status)
		if err != nil {
			return BookingRow{}, err
		}
		return NormalizeBooking(updated), nil
	})
}

func (b *Bookings) Snapshot() syncstore.Snapshot[BookingRow] {
	return b.col.Snapshot()
}

func (b *Bookings) ClearError() {
	b.col.ClearError()
}
