package stats

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roadfleet/roadfleet/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	stats := models.DashboardStats{VehicleTypes: map[string]int{}}

	query := `
		SELECT
			(SELECT count(*) FROM vehicles),
			(SELECT count(*) FROM vehicles WHERE status = 'Available'),
			(SELECT count(*) FROM vehicles WHERE status <> 'Available'),
			(SELECT count(*) FROM users WHERE role = 'user'),
			(SELECT count(*) FROM bookings),
			(SELECT COALESCE(sum(price), 0) FROM bookings WHERE status <> 'cancelled'),
			(SELECT COALESCE(avg(price), 0) FROM bookings WHERE status <> 'cancelled')`

	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalVehicles, &stats.AvailableVehicles, &stats.UnavailableVehicles,
		&stats.TotalUsers, &stats.TotalBookings,
		&stats.Revenue.Total, &stats.Revenue.Average)
	if err != nil {
		return stats, fmt.Errorf("error performing sql request: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT vehicle_type, count(*) FROM vehicles GROUP BY vehicle_type`)
	if err != nil {
		return stats, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var vehicleType string
		var count int
		if err := rows.Scan(&vehicleType, &count); err != nil {
			return stats, fmt.Errorf("error scanning vehicle type row: %w", err)
		}
		stats.VehicleTypes[vehicleType] = count
	}
	return stats, rows.Err()
}

func (r *PostgresRepository) Analytics(ctx context.Context) (models.Analytics, error) {
	var analytics models.Analytics

	trendRows, err := r.db.QueryContext(ctx, `
		SELECT to_char(created_at::date, 'YYYY-MM-DD'), count(*)
		FROM bookings
		WHERE created_at > now() - interval '30 days'
		GROUP BY created_at::date
		ORDER BY created_at::date`)
	if err != nil {
		return analytics, fmt.Errorf("error performing sql request: %w", err)
	}
	defer trendRows.Close()

	for trendRows.Next() {
		var p models.BookingTrend
		if err := trendRows.Scan(&p.Date, &p.Count); err != nil {
			return analytics, fmt.Errorf("error scanning trend row: %w", err)
		}
		analytics.BookingTrends = append(analytics.BookingTrends, p)
	}
	if err := trendRows.Err(); err != nil {
		return analytics, err
	}

	popularRows, err := r.db.QueryContext(ctx, `
		SELECT v.id, v.name, count(*)
		FROM bookings b
		JOIN vehicles v ON v.id = b.vehicle_id
		GROUP BY v.id, v.name
		ORDER BY count(*) DESC
		LIMIT 5`)
	if err != nil {
		return analytics, fmt.Errorf("error performing sql request: %w", err)
	}
	defer popularRows.Close()

	for popularRows.Next() {
		var p models.PopularVehicle
		if err := popularRows.Scan(&p.VehicleID, &p.Name, &p.Count); err != nil {
			return analytics, fmt.Errorf("error scanning popular vehicle row: %w", err)
		}
		analytics.PopularVehicles = append(analytics.PopularVehicles, p)
	}
	if err := popularRows.Err(); err != nil {
		return analytics, err
	}

	revenueRows, err := r.db.QueryContext(ctx, `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM'), COALESCE(sum(price), 0)
		FROM bookings
		WHERE status <> 'cancelled' AND created_at > now() - interval '12 months'
		GROUP BY date_trunc('month', created_at)
		ORDER BY date_trunc('month', created_at)`)
	if err != nil {
		return analytics, fmt.Errorf("error performing sql request: %w", err)
	}
	defer revenueRows.Close()

	for revenueRows.Next() {
		var p models.RevenuePoint
		if err := revenueRows.Scan(&p.Month, &p.Revenue); err != nil {
			return analytics, fmt.Errorf("error scanning revenue row: %w", err)
		}
		analytics.RevenueGrowth = append(analytics.RevenueGrowth, p)
	}
	return analytics, revenueRows.Err()
}
