package resources

import (
	"context"
	"sync"

	"github.com/roadfleet/roadfleet/internal/console/api"
	"github.com/roadfleet/roadfleet/internal/console/syncstore"
	"github.com/roadfleet/roadfleet/internal/netx"
)

// DefaultPageSize is the only client-derived part of the pagination
// descriptor; everything else comes from the fetch response wholesale.
const DefaultPageSize = 10

// VehicleFilters narrows the vehicle listing. Empty fields do not filter.
type VehicleFilters struct {
	Brand       string
	VehicleType string
	Location    string
	Status      string
}

// NormalizeVehicle fills display defaults on a wire vehicle. Idempotent.
func NormalizeVehicle(v api.Vehicle) api.Vehicle {
	v.Name = orFallback(v.Name, fallbackUnknown)
	v.Brand = orFallback(v.Brand, fallbackUnknown)
	v.Status = orFallback(v.Status, "Available")
	v.Location = orFallback(v.Location, fallbackNA)
	v.CreatedAt = formatTimestamp(v.CreatedAt, displayDate)
	v.UpdatedAt = formatTimestamp(v.UpdatedAt, displayDate)
	return v
}

// Vehicles is the sync store for the paginated vehicle collection.
type Vehicles struct {
	client api.Client
	col    *syncstore.Collection[api.Vehicle]

	mu         sync.Mutex
	pagination api.Pagination
	filters    VehicleFilters
	pageSize   int
}

func NewVehicles(client api.Client) *Vehicles {
	return &Vehicles{
		client:   client,
		col:      syncstore.NewCollection(func(v api.Vehicle) string { return v.ID }),
		pageSize: DefaultPageSize,
	}
}

// FetchPage loads one page under the current filters. The pagination
// descriptor is replaced from the response only when the fetch's result is
// applied, so a superseded fetch cannot leave a mismatched descriptor.
func (v *Vehicles) FetchPage(ctx context.Context, page int) error {
	v.mu.Lock()
	q := api.VehicleQuery{
		Page:        page,
		Limit:       v.pageSize,
		Brand:       v.filters.Brand,
		VehicleType: v.filters.VehicleType,
		Location:    v.filters.Location,
		Status:      v.filters.Status,
	}
	v.mu.Unlock()

	var fetched api.Pagination
	applied, err := v.col.Fetch(ctx, func(ctx context.Context) ([]api.Vehicle, error) {
		items, pagination, err := v.client.ListVehicles(ctx, q)
		if err != nil {
			return nil, err
		}
		fetched = pagination
		rows := make([]api.Vehicle, 0, len(items))
		for _, item := range items {
			rows = append(rows, NormalizeVehicle(item))
		}
		return rows, nil
	})

	if applied && err == nil {
		v.mu.Lock()
		v.pagination = fetched
		v.mu.Unlock()
	}
	return err
}

// SetFilters replaces the filters. The caller is expected to refetch from
// page 1 afterwards.
func (v *Vehicles) SetFilters(f VehicleFilters) {
	v.mu.Lock()
	v.filters = f
	v.mu.Unlock()
}

func (v *Vehicles) ClearFilters() {
	v.SetFilters(VehicleFilters{})
}

func (v *Vehicles) Filters() VehicleFilters {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filters
}

func (v *Vehicles) Pagination() api.Pagination {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pagination
}

// Create registers a vehicle and appends it to the cached page.
func (v *Vehicles) Create(ctx context.Context, draft api.Vehicle) error {
	return v.col.Create(ctx, func(ctx context.Context) (api.Vehicle, error) {
		created, err := v.client.CreateVehicle(ctx, draft)
		if err != nil {
			return api.Vehicle{}, err
		}
		return NormalizeVehicle(created), nil
	})
}

// Update sends only the patch's set fields and replaces the cached row
// with the server's response.
func (v *Vehicles) Update(ctx context.Context, id string, patch api.VehiclePatch) error {
	return v.col.Update(ctx, id, func(ctx context.Context) (api.Vehicle, error) {
		updated, err := v.client.UpdateVehicle(ctx, id, patch)
		if err != nil {
			return api.Vehicle{}, err
		}
		return NormalizeVehicle(updated), nil
	})
}

// Remove deletes a vehicle and drops it from the cached page.
func (v *Vehicles) Remove(ctx context.Context, id string) error {
	return v.col.Remove(ctx, id, func(ctx context.Context) error {
		return v.client.DeleteVehicle(ctx, id)
	})
}

// UploadImage obtains a presigned URL for the vehicle's photo, uploads the
// bytes, and patches the vehicle record with the stored object key.
func (v *Vehicles) UploadImage(ctx context.Context, id string, contentType string, data []byte) error {
	key, url, err := v.client.VehicleImageUploadURL(ctx, id)
	if err != nil {
		return err
	}
	if err := netx.UploadToPresignedURL(ctx, url, contentType, data); err != nil {
		return err
	}
	// Only the image key travels; every other field stays untouched.
	return v.Update(ctx, id, api.VehiclePatch{Image: &key})
}

func (v *Vehicles) Snapshot() syncstore.Snapshot[api.Vehicle] {
	return v.col.Snapshot()
}

func (v *Vehicles) ClearError() {
	v.col.ClearError()
}
