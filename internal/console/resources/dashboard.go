package resources

import (
	"context"

	"github.com/roadfleet/roadfleet/internal/console/api"
	"github.com/roadfleet/roadfleet/internal/console/syncstore"
)

// Dashboard holds the single stats snapshot. Read-only.
type Dashboard struct {
	client api.Client
	sum    *syncstore.Summary[api.DashboardStats]
}

func NewDashboard(client api.Client) *Dashboard {
	return &Dashboard{client: client, sum: syncstore.NewSummary[api.DashboardStats]()}
}

func (d *Dashboard) Fetch(ctx context.Context) error {
	_, err := d.sum.Fetch(ctx, func(ctx context.Context) (api.DashboardStats, error) {
		return d.client.Stats(ctx)
	})
	return err
}

func (d *Dashboard) Snapshot() syncstore.SummarySnapshot[api.DashboardStats] {
	return d.sum.Snapshot()
}

func (d *Dashboard) ClearError() {
	d.sum.ClearError()
}

// AnalyticsStore holds the single analytics summary. Read-only.
type AnalyticsStore struct {
	client api.Client
	sum    *syncstore.Summary[api.Analytics]
}

func NewAnalytics(client api.Client) *AnalyticsStore {
	return &AnalyticsStore{client: client, sum: syncstore.NewSummary[api.Analytics]()}
}

func (a *AnalyticsStore) Fetch(ctx context.Context) error {
	_, err := a.sum.Fetch(ctx, func(ctx context.Context) (api.Analytics, error) {
		return a.client.Analytics(ctx)
	})
	return err
}

func (a *AnalyticsStore) Snapshot() syncstore.SummarySnapshot[api.Analytics] {
	return a.sum.Snapshot()
}

func (a *AnalyticsStore) ClearError() {
	a.sum.ClearError()
}
