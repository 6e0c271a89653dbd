package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/server/models"
	"github.com/roadfleet/roadfleet/internal/server/repositories/vehicles"
	"github.com/roadfleet/roadfleet/internal/server/storage"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page describes one slice of the vehicle collection.
type Page struct {
	Items       []models.Vehicle
	Page        int
	Limit       int
	Total       int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// VehicleService manages the fleet and its images.
type VehicleService struct {
	repo    vehicles.Repository
	storage *storage.S3Storage
}

func NewVehicleService(repo vehicles.Repository, storage *storage.S3Storage) *VehicleService {
	return &VehicleService{repo: repo, storage: storage}
}

func validateVehicle(name, brand, vehicleType string, seats int) error {
	if name == "" || brand == "" {
		return fmt.Errorf("%w: name and brand are required", common.ErrorValidation)
	}
	if !slices.Contains(models.VehicleTypes, vehicleType) {
		return fmt.Errorf("%w: unknown vehicle type %q", common.ErrorValidation, vehicleType)
	}
	if seats < 0 {
		return fmt.Errorf("%w: seats must not be negative", common.ErrorValidation)
	}
	return nil
}

// List returns one page of vehicles matching filter. Page numbers are
// 1-based; out-of-range limits are clamped.
func (s *VehicleService) List(ctx context.Context, filter models.VehicleFilter, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	result, err := s.repo.List(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("error listing vehicles: %w", err)
	}

	totalPages := (result.Total + limit - 1) / limit
	return &Page{
		Items:       result.Items,
		Page:        page,
		Limit:       limit,
		Total:       result.Total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}, nil
}

func (s *VehicleService) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := validateVehicle(vehicle.Name, vehicle.Brand, vehicle.VehicleType, vehicle.Seats); err != nil {
		return nil, err
	}
	if vehicle.Status == "" {
		vehicle.Status = models.VehicleStatusAvailable
	}

	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		return nil, fmt.Errorf("error creating vehicle: %w", err)
	}
	return created, nil
}

func (s *VehicleService) Update(ctx context.Context, id string, patch vehicles.VehiclePatch) (*models.Vehicle, error) {
	if patch.VehicleType != nil && !slices.Contains(models.VehicleTypes, *patch.VehicleType) {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", common.ErrorValidation, *patch.VehicleType)
	}
	if patch.Seats != nil && *patch.Seats < 0 {
		return nil, fmt.Errorf("%w: seats must not be negative", common.ErrorValidation)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *VehicleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ImageUploadURL returns a fresh storage key plus a presigned PUT URL the
// console uploads the image bytes to.
func (s *VehicleService) ImageUploadURL(ctx context.Context, id string) (string, string, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return "", "", err
	}
	return s.storage.PresignedPutURL(ctx)
}
