package services

import (
	"context"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/server/models"
	"github.com/roadfleet/roadfleet/internal/server/repositories/vehicles"
)

// fakeUserRepo keys users by email for auth tests and keeps a flat list
// for admin listing tests.
type fakeUserRepo struct {
	byEmail map[string]*models.User
	list    []models.User

	updated     *models.User
	lastPatch   models.UserDetailsPatch
	patchCalls  int
	deleteCalls int
	deleteErr   error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if f.byEmail == nil {
		f.byEmail = map[string]*models.User{}
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	user.ID = "generated-id"
	f.byEmail[user.Email] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for i := range f.list {
		if f.list[i].ID == id {
			return &f.list[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	return f.list, nil
}

func (f *fakeUserRepo) UpdateDetails(ctx context.Context, id string, patch models.UserDetailsPatch) (*models.User, error) {
	f.patchCalls++
	f.lastPatch = patch
	if f.updated == nil {
		return nil, common.ErrorNotFound
	}
	return f.updated, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	return f.deleteErr
}

// fakeVehicleRepo returns a canned page and records the requested window.
type fakeVehicleRepo struct {
	page       models.VehiclePage
	listErr    error
	lastLimit  int
	lastOffset int
	lastFilter models.VehicleFilter

	created   *models.Vehicle
	updated   *models.Vehicle
	got       *models.Vehicle
	getErr    error
	deleteErr error
}

func (f *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if f.created != nil {
		return f.created, nil
	}
	vehicle.ID = "generated-id"
	return vehicle, nil
}

func (f *fakeVehicleRepo) Get(ctx context.Context, id string) (*models.Vehicle, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.got != nil {
		return f.got, nil
	}
	return &models.Vehicle{ID: id}, nil
}

func (f *fakeVehicleRepo) List(ctx context.Context, filter models.VehicleFilter, limit, offset int) (models.VehiclePage, error) {
	f.lastFilter = filter
	f.lastLimit = limit
	f.lastOffset = offset
	return f.page, f.listErr
}

func (f *fakeVehicleRepo) Update(ctx context.Context, id string, patch vehicles.VehiclePatch) (*models.Vehicle, error) {
	if f.updated == nil {
		return nil, common.ErrorNotFound
	}
	return f.updated, nil
}

func (f *fakeVehicleRepo) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

// fakeBookingRepo serves a fixed joined listing.
type fakeBookingRepo struct {
	listing    []models.BookingWithRefs
	updated    *models.BookingWithRefs
	updateErr  error
	lastStatus string
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	return booking, nil
}

func (f *fakeBookingRepo) ListWithRefs(ctx context.Context) ([]models.BookingWithRefs, error) {
	return f.listing, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status string) (*models.BookingWithRefs, error) {
	f.lastStatus = status
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updated == nil {
		return nil, common.ErrorNotFound
	}
	return f.updated, nil
}

// fakeStatsRepo returns canned aggregates.
type fakeStatsRepo struct {
	dashboard models.DashboardStats
	analytics models.Analytics
	err       error
}

func (f *fakeStatsRepo) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	return f.dashboard, f.err
}

func (f *fakeStatsRepo) Analytics(ctx context.Context) (models.Analytics, error) {
	return f.analytics, f.err
}
