package queries

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	complaints "github.com/goliatone/go-complaints/components/complaints"
)

type dashboardService interface {
	Dashboard() complaints.DashboardView
	RefreshDashboard(ctx context.Context) error
}

// DashboardInput asks for the dashboard view, optionally re-fetching first.
type DashboardInput struct {
	Refresh bool `json:"refresh"`
}

// DashboardQuery resolves the dashboard view.
type DashboardQuery struct {
	service dashboardService
}

// NewDashboardQuery builds the query.
func NewDashboardQuery(service dashboardService) *DashboardQuery {
	return &DashboardQuery{service: service}
}

var _ gocommand.Querier[DashboardInput, complaints.DashboardView] = (*DashboardQuery)(nil)

// Query returns the dashboard. A failed re-fetch is reported alongside the
// previous view.
func (q *DashboardQuery) Query(ctx context.Context, in DashboardInput) (complaints.DashboardView, error) {
	if q.service == nil {
		return complaints.DashboardView{}, errors.New("dashboard query requires service")
	}
	if in.Refresh {
		if err := q.service.RefreshDashboard(ctx); err != nil {
			return q.service.Dashboard(), err
		}
	}
	return q.service.Dashboard(), nil
}
