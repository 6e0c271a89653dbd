package vehicles

import (
	"context"
	"database/sql"
	"encoding/json"
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

const vehicleColumns = `id, name, brand, vehicle_type, location, seats, features, image, rental_plans, status, created_at, updated_at`

func scanVehicle(row interface{ Scan(...any) error }) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{}
	var features, plans []byte

	err := row.Scan(&vehicle.ID, &vehicle.Name, &vehicle.Brand, &vehicle.VehicleType,
		&vehicle.Location, &vehicle.Seats, &features, &vehicle.Image, &plans,
		&vehicle.Status, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(features, &vehicle.Features); err != nil {
		return nil, fmt.Errorf("error decoding features: %w", err)
	}
	if err := json.Unmarshal(plans, &vehicle.RentalPlans); err != nil {
		return nil, fmt.Errorf("error decoding rental plans: %w", err)
	}
	return vehicle, nil
}

func marshalJSONB(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	// Nil slices marshal to "null", which jsonb would happily store.
	if string(b) == "null" {
		return []byte("[]"), nil
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	features, err := marshalJSONB(vehicle.Features)
	if err != nil {
		return nil, err
	}
	plans, err := marshalJSONB(vehicle.RentalPlans)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO vehicles (name, brand, vehicle_type, location, seats, features, image, rental_plans, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
		`

	err = r.db.QueryRowContext(ctx, query,
		vehicle.Name, vehicle.Brand, vehicle.VehicleType, vehicle.Location,
		vehicle.Seats, features, vehicle.Image, plans, vehicle.Status).
		Scan(&vehicle.ID, &vehicle.CreatedAt, &vehicle.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return vehicle, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := scanVehicle(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return vehicle, nil
}

func (r *PostgresRepository) List(ctx context.Context, filter models.VehicleFilter, limit, offset int) (models.VehiclePage, error) {
	// Empty filter fields match everything.
	where := `
		WHERE ($1 = '' OR brand = $1)
		  AND ($2 = '' OR vehicle_type = $2)
		  AND ($3 = '' OR location = $3)
		  AND ($4 = '' OR status = $4)`

	var page models.VehiclePage

	countQuery := `SELECT count(*) FROM vehicles` + where
	err := r.db.QueryRowContext(ctx, countQuery,
		filter.Brand, filter.VehicleType, filter.Location, filter.Status).Scan(&page.Total)
	if err != nil {
		return page, fmt.Errorf("error performing sql request: %w", err)
	}

	listQuery := `SELECT ` + vehicleColumns + ` FROM vehicles` + where + `
		ORDER BY created_at DESC
		LIMIT $5 OFFSET $6`

	rows, err := r.db.QueryContext(ctx, listQuery,
		filter.Brand, filter.VehicleType, filter.Location, filter.Status, limit, offset)
	if err != nil {
		return page, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return page, fmt.Errorf("error scanning vehicle row: %w", err)
		}
		page.Items = append(page.Items, *vehicle)
	}
	return page, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch VehiclePatch) (*models.Vehicle, error) {
	var features, plans []byte
	var err error
	if patch.Features != nil {
		if features, err = json.Marshal(patch.Features); err != nil {
			return nil, err
		}
	}
	if patch.RentalPlans != nil {
		if plans, err = json.Marshal(patch.RentalPlans); err != nil {
			return nil, err
		}
	}

	query := `
		UPDATE vehicles SET
			name         = COALESCE($2, name),
			brand        = COALESCE($3, brand),
			vehicle_type = COALESCE($4, vehicle_type),
			location     = COALESCE($5, location),
			seats        = COALESCE($6, seats),
			features     = COALESCE($7, features),
			image        = COALESCE($8, image),
			rental_plans = COALESCE($9, rental_plans),
			status       = COALESCE($10, status),
			updated_at   = now()
		WHERE id = $1
		RETURNING ` + vehicleColumns

	vehicle, err := scanVehicle(r.db.QueryRowContext(ctx, query, id,
		patch.Name, patch.Brand, patch.VehicleType, patch.Location,
		patch.Seats, features, patch.Image, plans, patch.Status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	return vehicle, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrorNotFound
	}
	return nil
}
