package repository

import (
	"context"
	"fmt"

	"injai_channel/internal/model"
)

// DashboardRepository aggregates the counts shown on the admin landing page
type DashboardRepository interface {
	Counts(ctx context.Context) (*model.DashboardCounts, error)
}

type dashboardRepository struct {
	db DBTX
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db DBTX) DashboardRepository {
	return &dashboardRepository{db: db}
}

// Counts returns the number of rows per content table and of active subscribers
func (r *dashboardRepository) Counts(ctx context.Context) (*model.DashboardCounts, error) {
	counts := &model.DashboardCounts{}
	sql := `SELECT
            (SELECT COUNT(*) FROM artists),
            (SELECT COUNT(*) FROM videos),
            (SELECT COUNT(*) FROM events),
            (SELECT COUNT(*) FROM news),
            (SELECT COUNT(*) FROM newsletter_subscriptions WHERE status = 'active')`
	err := r.db.QueryRow(ctx, sql).Scan(&counts.Artists, &counts.Videos, &counts.Events, &counts.News, &counts.Subscribers)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard counts: %w", err)
	}
	return counts, nil
}
