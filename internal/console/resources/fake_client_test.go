package resources

import (
	"context"

	"github.com/roadfleet/roadfleet/internal/console/api"
)

// fakeClient satisfies api.Client with programmable responses. Unset
// endpoints return zero values.
type fakeClient struct {
	loginToken    string
	loginIdentity api.Identity
	loginErr      error

	bookings         []api.Booking
	bookingsErr      error
	updatedBooking   api.Booking
	updateBookingErr error

	vehicles         []api.Vehicle
	vehiclePager     api.Pagination
	vehiclesErr      error
	lastVehicleQuery api.VehicleQuery
	createdVehicle    api.Vehicle
	createVehicleErr  error
	updatedVehicle    api.Vehicle
	updateVehicleErr  error
	lastVehiclePatch  api.VehiclePatch
	vehiclePatchCalls int
	deleteVehicleErr error
	imageKey         string
	imageURL         string
	imageErr         error

	users          []api.User
	usersErr       error
	updatedUser    api.User
	updateUserErr  error
	lastUserPatch  api.UserDetailsPatch
	userPatchCalls int
	deleteUserErr  error

	stats        api.DashboardStats
	statsErr     error
	analytics    api.Analytics
	analyticsErr error
}

func (f *fakeClient) Login(ctx context.Context, email string, password []byte) (string, api.Identity, error) {
	return f.loginToken, f.loginIdentity, f.loginErr
}

func (f *fakeClient) ListBookings(ctx context.Context) ([]api.Booking, error) {
	return f.bookings, f.bookingsErr
}

func (f *fakeClient) UpdateBookingStatus(ctx context.Context, id string, status string) (api.Booking, error) {
	return f.updatedBooking, f.updateBookingErr
}

func (f *fakeClient) ListVehicles(ctx context.Context, q api.VehicleQuery) ([]api.Vehicle, api.Pagination, error) {
	f.lastVehicleQuery = q
	return f.vehicles, f.vehiclePager, f.vehiclesErr
}

func (f *fakeClient) CreateVehicle(ctx context.Context, draft api.Vehicle) (api.Vehicle, error) {
	return f.createdVehicle, f.createVehicleErr
}

func (f *fakeClient) UpdateVehicle(ctx context.Context, id string, patch api.VehiclePatch) (api.Vehicle, error) {
	f.vehiclePatchCalls++
	f.lastVehiclePatch = patch
	return f.updatedVehicle, f.updateVehicleErr
}

func (f *fakeClient) DeleteVehicle(ctx context.Context, id string) error {
	return f.deleteVehicleErr
}

func (f *fakeClient) VehicleImageUploadURL(ctx context.Context, id string) (string, string, error) {
	return f.imageKey, f.imageURL, f.imageErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]api.User, error) {
	return f.users, f.usersErr
}

func (f *fakeClient) UpdateUserDetails(ctx context.Context, id string, patch api.UserDetailsPatch) (api.User, error) {
	f.userPatchCalls++
	f.lastUserPatch = patch
	return f.updatedUser, f.updateUserErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	return f.deleteUserErr
}

func (f *fakeClient) Stats(ctx context.Context) (api.DashboardStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeClient) Analytics(ctx context.Context) (api.Analytics, error) {
	return f.analytics, f.analyticsErr
}
