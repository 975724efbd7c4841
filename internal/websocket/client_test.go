package websocket

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

// dialDashboard serves hub over a test server and connects one dashboard to it
func dialDashboard(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(conn, hub)
		hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEventType(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var evt Event
	require.NoError(t, json.Unmarshal(msg, &evt))
	return evt.Type
}

func TestClient_SyncOnConnectAndOnRequest(t *testing.T) {
	hub := NewHub()
	hub.SetSyncSource(func() Event {
		return SnapshotSync(map[string]int{"transactions": 3})
	})

	conn := dialDashboard(t, hub)
	assert.Equal(t, SyncEventType, readEventType(t, conn))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"snapshot.sync"}`)))
	assert.Equal(t, SyncEventType, readEventType(t, conn))
}

func TestClient_EventsArriveInOrder(t *testing.T) {
	hub := NewHub()
	conn := dialDashboard(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Broadcast(AssetCreated(map[string]string{"id": "p4"}))
	hub.Broadcast(AssetUpdated(map[string]string{"id": "p4"}))
	hub.Broadcast(AssetDeleted(map[string]string{"id": "p4"}))

	assert.Equal(t, "asset.created", readEventType(t, conn))
	assert.Equal(t, "asset.updated", readEventType(t, conn))
	assert.Equal(t, "asset.deleted", readEventType(t, conn))
}

func TestClient_DisconnectUnregisters(t *testing.T) {
	hub := NewHub()
	conn := dialDashboard(t, hub)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestClient_FullOutboxClosesClient(t *testing.T) {
	// No pumps run, so nothing drains the outbox
	client := NewClient(nil, NewHub())

	for i := 0; i < outboxSize; i++ {
		require.NoError(t, client.Send([]byte("{}")))
	}
	assert.ErrorIs(t, client.Send([]byte("{}")), ErrClientTooSlow)
	assert.ErrorIs(t, client.Send([]byte("{}")), ErrClientClosed)
	assert.NoError(t, client.Close())
}
