package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"go.uber.org/zap"

	complaints "github.com/goliatone/go-complaints/components/complaints"
	"github.com/goliatone/go-complaints/components/complaints/commands"
	"github.com/goliatone/go-complaints/components/complaints/gorouter"
	"github.com/goliatone/go-complaints/components/complaints/httpapi"
	"github.com/goliatone/go-complaints/components/complaints/queries"
	"github.com/goliatone/go-complaints/pkg/api"
)

// serveCmd hosts a single client. Every browser connected to the process
// shares its one session.
type serveCmd struct {
	Addr     string        `env:"COMPLAINTS_ADDR" default:":8080" help:"Listen address."`
	BasePath string        `default:"/app" help:"Path prefix for every route."`
	Demo     bool          `help:"Use an in-memory backend seeded with sample complaints."`
	ChartTTL time.Duration `name:"chart-ttl" default:"1m" help:"How long rendered charts are cached."`
}

func (cmd *serveCmd) Run(ctx context.Context, g *Globals) error {
	log, err := g.logger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	var client api.Client
	if cmd.Demo {
		client = demoBackend()
	} else {
		httpClient, err := g.client(log)
		if err != nil {
			return err
		}
		client = httpClient
	}
	catalog, err := g.catalog()
	if err != nil {
		return err
	}

	hook := complaints.NewBroadcastHook()
	svc := complaints.NewService(complaints.Options{
		Complaints:  client,
		Users:       client,
		Catalog:     catalog,
		RefreshHook: hook,
		Telemetry:   complaints.NewZapTelemetry(log),
		Logger:      log,
	})
	defer svc.Close()

	renderer, err := complaints.NewTemplateRenderer()
	if err != nil {
		return err
	}
	controller := complaints.NewController(complaints.ControllerOptions{
		Service:  svc,
		Renderer: renderer,
		Chart:    complaints.NewStatusChart(complaints.WithStatusChartCache(complaints.NewChartCache(cmd.ChartTTL))),
		Logger:   log,
	})
	handlers := httpapi.NewHandlers(commands.NewSet(svc), queries.NewStateQuery(svc))

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: controller,
		API:        handlers,
		Broadcast:  hook,
		BasePath:   cmd.BasePath,
	}); err != nil {
		return err
	}

	log.Info("serving complaints client",
		zap.String("addr", cmd.Addr),
		zap.String("base_path", cmd.BasePath),
		zap.String("api_url", g.APIURL),
		zap.Bool("demo", cmd.Demo),
	)
	errc := make(chan error, 1)
	go func() { errc <- server.Serve(cmd.Addr) }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		return nil
	}
}

func demoBackend() *api.MockClient {
	return api.NewMockClient(
		complaints.Complaint{Title: "Roads Issue at Elm Street", Description: "Deep pothole near the school gate", Category: "Roads", UserEmail: "demo@example.com", Status: "Open"},
		complaints.Complaint{Title: "Water Issue at Market Square", Description: "Burst main flooding the pavement", Category: "Water", UserEmail: "demo@example.com", Status: "In Progress"},
		complaints.Complaint{Title: "Electricity Issue at Park Lane", Category: "Electricity", UserEmail: "demo@example.com", Status: "Resolved"},
		complaints.Complaint{Title: "Waste Issue at Hill Road", Description: "Bins not collected for two weeks", Category: "Waste", UserEmail: "demo@example.com", Status: "Closed"},
		complaints.Complaint{Title: "Sanitation Issue at Station Road", Description: "Blocked drain", Category: "Sanitation", UserEmail: "someone@example.com", Status: "Open"},
	)
}
