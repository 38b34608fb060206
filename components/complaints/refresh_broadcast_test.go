package complaints

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastHookSubscribe(t *testing.T) {
	hook := NewBroadcastHook()
	ch, cancel := hook.Subscribe()
	defer cancel()
	event := StateEvent{ID: "evt-1", Reason: "dashboard.refresh"}
	if err := hook.StateUpdated(context.Background(), event); err != nil {
		t.Fatalf("StateUpdated returned error: %v", err)
	}
	select {
	case e := <-ch:
		if e.Reason != event.Reason {
			t.Fatalf("expected reason %s, got %s", event.Reason, e.Reason)
		}
	default:
		t.Fatalf("expected event to be delivered")
	}
}

func TestBroadcastHookCancelIsIdempotent(t *testing.T) {
	hook := NewBroadcastHook()
	_, cancel := hook.Subscribe()
	assert.Equal(t, 1, hook.Subscribers())
	cancel()
	cancel()
	assert.Equal(t, 0, hook.Subscribers())
	require.NoError(t, hook.StateUpdated(context.Background(), StateEvent{}))
}

func TestBroadcastHookServeWebSocket(t *testing.T) {
	hook := NewBroadcastHook()
	server := httptest.NewServer(http.HandlerFunc(hook.ServeWebSocket))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hook.Subscribers() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, hook.StateUpdated(context.Background(), StateEvent{ID: "evt-2", Reason: "session.begin"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got StateEvent
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "evt-2", got.ID)
	assert.Equal(t, "session.begin", got.Reason)
}

func TestBroadcastHookServeSSE(t *testing.T) {
	hook := NewBroadcastHook()
	server := httptest.NewServer(http.HandlerFunc(hook.ServeSSE))
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	require.Eventually(t, func() bool { return hook.Subscribers() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, hook.StateUpdated(context.Background(), StateEvent{ID: "evt-3", Reason: "view.select"}))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(line, "data: "))
	var got StateEvent
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &got))
	assert.Equal(t, "evt-3", got.ID)
}
