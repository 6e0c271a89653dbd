// Package api implements the console's outbound HTTP surface: a typed
// client over the rental platform's admin REST API. Every protected call
// carries the current bearer token, and any 401 triggers the registered
// unauthorized hook exactly once for that response.
package api

import "context"

// Client is the remote admin API as the console consumes it.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (string, Identity, error)

	ListBookings(ctx context.Context) ([]Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status string) (Booking, error)

	ListVehicles(ctx context.Context, q VehicleQuery) ([]Vehicle, Pagination, error)
	CreateVehicle(ctx context.Context, draft Vehicle) (Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, patch VehiclePatch) (Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
	VehicleImageUploadURL(ctx context.Context, id string) (key string, url string, err error)

	ListUsers(ctx context.Context) ([]User, error)
	UpdateUserDetails(ctx context.Context, id string, patch UserDetailsPatch) (User, error)
	DeleteUser(ctx context.Context, id string) error

	Stats(ctx context.Context) (DashboardStats, error)
	Analytics(ctx context.Context) (Analytics, error)
}
