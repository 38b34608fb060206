package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	complaints "github.com/goliatone/go-complaints/components/complaints"
	"github.com/goliatone/go-complaints/pkg/api"
)

// Globals holds the flags shared by every command.
type Globals struct {
	APIURL  string        `name:"api-url" env:"COMPLAINTS_API_URL" default:"http://127.0.0.1:8000" help:"Base URL of the complaint service."`
	Timeout time.Duration `env:"COMPLAINTS_TIMEOUT" default:"10s" help:"Timeout for each remote call."`
	Catalog string        `type:"path" env:"COMPLAINTS_CATALOG" help:"Category catalog YAML (defaults to the built-in set)."`
	Debug   bool          `env:"COMPLAINTS_DEBUG" help:"Enable debug logging."`
}

func (g *Globals) logger() (*zap.Logger, error) {
	if g.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (g *Globals) catalog() (*complaints.CatalogDocument, error) {
	if g.Catalog == "" {
		return complaints.DefaultCatalog(), nil
	}
	return complaints.ReadCatalog(g.Catalog)
}

func (g *Globals) client(log *zap.Logger) (*api.HTTPClient, error) {
	client, err := api.NewHTTPClient(api.HTTPConfig{
		BaseURL: g.APIURL,
		Timeout: g.Timeout,
		Logger:  log,
	})
	if err != nil {
		return nil, fmt.Errorf("complaintsctl: %w", err)
	}
	return client, nil
}

// service builds a Service for one-shot commands.
func (g *Globals) service(log *zap.Logger, client api.Client) (*complaints.Service, error) {
	catalog, err := g.catalog()
	if err != nil {
		return nil, err
	}
	return complaints.NewService(complaints.Options{
		Complaints: client,
		Users:      client,
		Catalog:    catalog,
		Telemetry:  complaints.NewZapTelemetry(log),
		Logger:     log,
	}), nil
}
