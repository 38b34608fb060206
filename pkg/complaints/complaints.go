package complaints

import (
	core "github.com/goliatone/go-complaints/components/complaints"
	"github.com/goliatone/go-complaints/pkg/api"
)

// Service exposes the underlying components/complaints.Service type.
type Service = core.Service

// Options re-export for convenience.
type Options = core.Options

// UIState re-export for renderers outside the module.
type UIState = core.UIState

// NewService proxies to the internal constructor.
func NewService(opts Options) *Service {
	return core.NewService(opts)
}

// NewHTTPService builds a Service whose repositories talk to the remote
// service described by cfg. Repositories already set on opts are kept.
func NewHTTPService(cfg api.HTTPConfig, opts Options) (*Service, *api.HTTPClient, error) {
	client, err := api.NewHTTPClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	if opts.Complaints == nil {
		opts.Complaints = client
	}
	if opts.Users == nil {
		opts.Users = client
	}
	if opts.Logger == nil {
		opts.Logger = cfg.Logger
	}
	return core.NewService(opts), client, nil
}
