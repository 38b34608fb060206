package queries

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	complaints "github.com/goliatone/go-complaints/components/complaints"
)

type stateService interface {
	State() complaints.UIState
}

// StateInput requests a state snapshot.
type StateInput struct{}

// StateQuery returns the full client state.
type StateQuery struct {
	service stateService
}

// NewStateQuery builds the query.
func NewStateQuery(service stateService) *StateQuery {
	return &StateQuery{service: service}
}

var _ gocommand.Querier[StateInput, complaints.UIState] = (*StateQuery)(nil)

// Query returns the current snapshot.
func (q *StateQuery) Query(_ context.Context, _ StateInput) (complaints.UIState, error) {
	if q.service == nil {
		return complaints.UIState{}, errors.New("state query requires service")
	}
	return q.service.State(), nil
}
