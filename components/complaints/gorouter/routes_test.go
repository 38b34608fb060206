package gorouter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	complaints "github.com/goliatone/go-complaints/components/complaints"
)

func TestRegisterValidatesConfig(t *testing.T) {
	err := Register(Config[struct{}]{})
	if err == nil {
		t.Fatalf("expected error when router/controller missing")
	}
}

func TestRegisterChecksRouterFirst(t *testing.T) {
	err := Register(Config[struct{}]{Controller: nil, Broadcast: complaints.NewBroadcastHook()})
	assert.EqualError(t, err, "gorouter: router is required")
}

func TestDefaultRouteConfig(t *testing.T) {
	routes := defaultRouteConfig(RouteConfig{HTML: "/home"})
	assert.Equal(t, "/home", routes.HTML)
	assert.Equal(t, "/complaints/_state", routes.State)
	assert.Equal(t, "/complaints/actions/:action", routes.Action)
	assert.Equal(t, "/complaints/ws", routes.WebSocket)
}
