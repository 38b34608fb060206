package api

import (
	"context"

	complaints "github.com/goliatone/go-complaints/components/complaints"
)

// UserDirectory lists the accounts known to the remote service.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]complaints.User, error)
}

// HealthChecker probes the remote service.
type HealthChecker interface {
	Ping(ctx context.Context) (string, error)
}

// Client is the union of every remote call the complaints client makes.
type Client interface {
	complaints.ComplaintRepository
	complaints.UserRepository
	UserDirectory
	HealthChecker
}

var (
	_ Client = (*HTTPClient)(nil)
	_ Client = (*MockClient)(nil)
)
