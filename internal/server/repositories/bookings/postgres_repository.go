package bookings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

const joinedColumns = `b.id, b.user_id, b.vehicle_id, b.rental_plan_name, b.start_date, b.end_date,
	b.include_driver, b.price, b.status, b.pickup_location, b.drop_location, b.created_at,
	u.name, v.brand, v.vehicle_type`

func scanJoined(row interface{ Scan(...any) error }) (*models.BookingWithRefs, error) {
	b := &models.BookingWithRefs{}
	err := row.Scan(&b.ID, &b.UserID, &b.VehicleID, &b.RentalPlanName, &b.StartDate, &b.EndDate,
		&b.IncludeDriver, &b.Price, &b.Status, &b.PickupLocation, &b.DropLocation, &b.CreatedAt,
		&b.UserName, &b.VehicleBrand, &b.VehicleVehicleType)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (user_id, vehicle_id, rental_plan_name, start_date, end_date,
			include_driver, price, status, pickup_location, drop_location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
		`

	err := r.db.QueryRowContext(ctx, query,
		booking.UserID, booking.VehicleID, booking.RentalPlanName,
		booking.StartDate, booking.EndDate, booking.IncludeDriver,
		booking.Price, booking.Status, booking.PickupLocation, booking.DropLocation).
		Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return booking, nil
}

func (r *PostgresRepository) ListWithRefs(ctx context.Context) ([]models.BookingWithRefs, error) {
	query := `
		SELECT ` + joinedColumns + `
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN vehicles v ON v.id = b.vehicle_id
		ORDER BY b.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingWithRefs
	for rows.Next() {
		booking, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.BookingWithRefs, error) {
	query := `
		WITH updated AS (
			UPDATE bookings SET status = $2 WHERE id = $1 RETURNING *
		)
		SELECT ` + joinedColumns + `
		FROM updated b
		JOIN users u ON u.id = b.user_id
		JOIN vehicles v ON v.id = b.vehicle_id`

	booking, err := scanJoined(r.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return booking, nil
}
