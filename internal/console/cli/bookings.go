package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) Bookings(ctx context.Context, args []string) {
	if !a.requireSession(ctx) {
		return
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.listBookings(ctx)
	case "setstatus":
		a.setBookingStatus(ctx)
	default:
		printlnFn("Usage: bookings [list|setstatus]")
	}
}

func (a *App) listBookings(ctx context.Context) {
	if err := a.bookings.FetchAll(ctx); err != nil {
		log.Printf("error: %v", err)
	}

	snap := a.bookings.Snapshot()
	reportStatus(snap.Status, snap.Err)

	w := newTable()
	fmt.Fprintln(w, "ID\tUSER\tVEHICLE\tPLAN\tFROM\tTO\tDRIVER\tPRICE\tSTATUS\tPICKUP\tDROP")
	for _, b := range snap.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n",
			b.BookingID, b.UserName, b.Vehicle, b.RentalPlan,
			b.StartDate, b.EndDate, b.IncludeDriver, b.Price,
			b.Status, b.PickupLocation, b.DropLocation)
	}
	w.Flush()
}

func (a *App) setBookingStatus(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Booking ID", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	status, err := GetSimpleText(a.reader, "New status (pending/confirmed/cancelled/completed)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.bookings.UpdateStatus(ctx, id, status); err != nil {
		log.Printf("error: %v", err)
		return
	}
	printlnFn("Booking updated.")
}
