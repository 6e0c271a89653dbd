package stats

import (
	"context"

	"github.com/roadfleet/roadfleet/internal/server/models"
)

// Repository computes the dashboard and analytics aggregates. Aggregation
// is done SQL-side; the console never cross-joins its own stores.
type Repository interface {
	Dashboard(ctx context.Context) (models.DashboardStats, error)
	Analytics(ctx context.Context) (models.Analytics, error)
}
