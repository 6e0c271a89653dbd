package repomanager

import (
	"context"

	"github.com/roadfleet/roadfleet/internal/server/repositories/bookings"
	"github.com/roadfleet/roadfleet/internal/server/repositories/stats"
	"github.com/roadfleet/roadfleet/internal/server/repositories/users"
	"github.com/roadfleet/roadfleet/internal/server/repositories/vehicles"
)

// RepositoryManager vends the repository set backed by a single database
// and exposes a schema migration hook.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Users() users.Repository
	Vehicles() vehicles.Repository
	Bookings() bookings.Repository
	Stats() stats.Repository
}
