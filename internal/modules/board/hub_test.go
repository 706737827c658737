package board

import (
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

func dialPair(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		hub.Register(userID, conn)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestHub_PublishReachesOwner(t *testing.T) {
	hub := NewHub()
	client := dialPair(t, hub, "user-1")

	for !hub.IsOnline("user-1") {
		time.Sleep(time.Millisecond)
	}

	hub.Publish("user-1", map[string]any{"type": "task.created", "payload": map[string]any{"id": "t1"}})

	client.SetReadDeadline(time.Now().Add(time.Second))
	var event map[string]any
	require.NoError(t, client.ReadJSON(&event))
	assert.Equal(t, "task.created", event["type"])
}

func TestHub_PublishToOfflineUserIsNoop(t *testing.T) {
	hub := NewHub()
	assert.NotPanics(t, func() {
		hub.Publish("nobody", json.RawMessage(`{}`))
	})
}

func TestHub_NewConnectionReplacesOld(t *testing.T) {
	hub := NewHub()
	first := dialPair(t, hub, "user-1")
	_ = dialPair(t, hub, "user-1")

	// The first socket is closed server-side when the second registers.
	first.SetReadDeadline(time.Now().Add(time.Second))
	_, _, err := first.ReadMessage()
	assert.Error(t, err)
	assert.True(t, hub.IsOnline("user-1"))
}

func TestHub_UnregisterRemovesConnection(t *testing.T) {
	hub := NewHub()
	_ = dialPair(t, hub, "user-1")

	for !hub.IsOnline("user-1") {
		time.Sleep(time.Millisecond)
	}
	hub.Unregister("user-1")
	assert.False(t, hub.IsOnline("user-1"))
}
