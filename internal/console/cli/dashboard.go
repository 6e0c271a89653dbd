package cli

import (
	"context"
	"fmt"
	"log"
)

func (a *App) Dashboard(ctx context.Context) {
	if !a.requireSession(ctx) {
		return
	}

	if err := a.dashboard.Fetch(ctx); err != nil {
		log.Printf("error: %v", err)
	}

	snap := a.dashboard.Snapshot()
	reportStatus(snap.Status, snap.Err)

	stats := snap.Data
	w := newTable()
	fmt.Fprintf(w, "Vehicles\t%d (%d available, %d unavailable)\n",
		stats.TotalVehicles, stats.AvailableVehicles, stats.UnavailableVehicles)
	fmt.Fprintf(w, "Users\t%d\n", stats.TotalUsers)
	fmt.Fprintf(w, "Bookings\t%d\n", stats.TotalBookings)
	fmt.Fprintf(w, "Revenue\t%.2f total, %.2f average\n", stats.Revenue.Total, stats.Revenue.Average)
	for vehicleType, count := range stats.VehicleTypes {
		fmt.Fprintf(w, "  %s\t%d\n", vehicleType, count)
	}
	w.Flush()
}

func (a *App) Analytics(ctx context.Context) {
	if !a.requireSession(ctx) {
		return
	}

	if err := a.analytics.Fetch(ctx); err != nil {
		log.Printf("error: %v", err)
	}

	snap := a.analytics.Snapshot()
	reportStatus(snap.Status, snap.Err)

	w := newTable()
	fmt.Fprintln(w, "BOOKING TRENDS")
	for _, p := range snap.Data.BookingTrends {
		fmt.Fprintf(w, "  %s\t%d\n", p.Date, p.Count)
	}
	fmt.Fprintln(w, "POPULAR VEHICLES")
	for _, p := range snap.Data.PopularVehicles {
		fmt.Fprintf(w, "  %s\t%d\n", p.Name, p.Count)
	}
	fmt.Fprintln(w, "REVENUE GROWTH")
	for _, p := range snap.Data.RevenueGrowth {
		fmt.Fprintf(w, "  %s\t%.2f\n", p.Month, p.Revenue)
	}
	w.Flush()
}
