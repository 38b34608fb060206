package gorouter

import (
	"bytes"
	"errors"
	"net/http"

	router "github.com/goliatone/go-router"

	complaints "github.com/goliatone/go-complaints/components/complaints"
	"github.com/goliatone/go-complaints/components/complaints/httpapi"
)

// Config wires go-router with the complaints controller, actions and hooks.
type Config[T any] struct {
	Router     router.Router[T]
	Controller *complaints.Controller
	API        httpapi.Executor
	Broadcast  *complaints.BroadcastHook
	BasePath   string
	Routes     RouteConfig
}

// RouteConfig customizes the relative paths used for client endpoints.
type RouteConfig struct {
	HTML      string
	State     string
	Action    string
	WebSocket string
}

// Register mounts the client routes (HTML, JSON state, actions, WebSocket) on
// a go-router router.
func Register[T any](cfg Config[T]) error {
	if cfg.Router == nil {
		return errors.New("gorouter: router is required")
	}
	if cfg.Controller == nil {
		return errors.New("gorouter: controller is required")
	}
	routes := defaultRouteConfig(cfg.Routes)
	base := cfg.BasePath
	if base == "" {
		base = "/app"
	}

	group := cfg.Router.Group(base)

	group.Get(routes.HTML, router.WrapHandler(func(ctx router.Context) error {
		var buf bytes.Buffer
		if err := cfg.Controller.RenderTemplate(ctx.Context(), &buf); err != nil {
			return respondError(ctx, http.StatusInternalServerError, err)
		}
		ctx.SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.Send(buf.Bytes())
	}))

	group.Get(routes.State, router.WrapHandler(func(ctx router.Context) error {
		return respondState(ctx, cfg.Controller, http.StatusOK)
	}))

	if cfg.API != nil {
		group.Post(routes.Action, router.WrapHandler(func(ctx router.Context) error {
			action := ctx.Param("action")
			if err := cfg.API.Execute(ctx.Context(), action, ctx.Body()); err != nil {
				return respondError(ctx, httpapi.StatusFor(err), err)
			}
			return respondState(ctx, cfg.Controller, http.StatusOK)
		}))
	}

	if cfg.Broadcast != nil {
		registerWebSocket(group, cfg.Broadcast, routes.WebSocket)
	}
	return nil
}

func registerWebSocket[T any](r router.Router[T], hook *complaints.BroadcastHook, path string) {
	cfg := router.DefaultWebSocketConfig()
	r.WebSocket(path, cfg, func(ws router.WebSocketContext) error {
		events, cancel := hook.Subscribe()
		defer cancel()
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := ws.WriteJSON(event); err != nil {
					return err
				}
			case <-ws.Context().Done():
				return ws.Close()
			}
		}
	})
}

func respondState(ctx router.Context, controller *complaints.Controller, status int) error {
	payload, err := controller.StatePayload(ctx.Context())
	if err != nil {
		return respondError(ctx, http.StatusInternalServerError, err)
	}
	return ctx.JSON(status, payload["state"])
}

func respondError(ctx router.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"error": err.Error()})
}

func defaultRouteConfig(routes RouteConfig) RouteConfig {
	if routes.HTML == "" {
		routes.HTML = "/complaints"
	}
	if routes.State == "" {
		routes.State = "/complaints/_state"
	}
	if routes.Action == "" {
		routes.Action = "/complaints/actions/:action"
	}
	if routes.WebSocket == "" {
		routes.WebSocket = "/complaints/ws"
	}
	return routes
}
