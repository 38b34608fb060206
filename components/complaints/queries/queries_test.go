package queries

import (
	"context"
	"errors"
	"testing"

	complaints "github.com/goliatone/go-complaints/components/complaints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardService struct {
	view       complaints.DashboardView
	refreshErr error
	refreshes  int
}

func (s *stubDashboardService) State() complaints.UIState {
	return complaints.UIState{Dashboard: s.view}
}

func (s *stubDashboardService) Dashboard() complaints.DashboardView { return s.view }

func (s *stubDashboardService) RefreshDashboard(context.Context) error {
	s.refreshes++
	return s.refreshErr
}

func TestStateQuery(t *testing.T) {
	service := &stubDashboardService{view: complaints.DashboardView{Total: 2}}
	query := NewStateQuery(service)
	state, err := query.Query(context.Background(), StateInput{})
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if state.Dashboard.Total != 2 {
		t.Fatalf("expected total 2, got %d", state.Dashboard.Total)
	}
}

func TestDashboardQuery(t *testing.T) {
	service := &stubDashboardService{view: complaints.DashboardView{Total: 1}}
	query := NewDashboardQuery(service)

	view, err := query.Query(context.Background(), DashboardInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Total)
	assert.Equal(t, 0, service.refreshes)

	_, err = query.Query(context.Background(), DashboardInput{Refresh: true})
	require.NoError(t, err)
	assert.Equal(t, 1, service.refreshes)
}

func TestDashboardQueryKeepsViewOnRefreshError(t *testing.T) {
	service := &stubDashboardService{
		view:       complaints.DashboardView{Total: 3},
		refreshErr: errors.New("backend down"),
	}
	view, err := NewDashboardQuery(service).Query(context.Background(), DashboardInput{Refresh: true})
	require.Error(t, err)
	assert.Equal(t, 3, view.Total)
}
