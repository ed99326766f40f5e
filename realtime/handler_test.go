package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/chatline-go/presence"
)

func dialTestServer(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?userId=" + userID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev Event
	require.NoError(t, json.Unmarshal(payload, &ev))
	return ev
}

func TestHandshakeRegistersPresence(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	srv := httptest.NewServer(hub.HandleWebSocket(""))
	defer srv.Close()

	userID := uuid.New()
	conn := dialTestServer(t, srv, userID.String())

	ev := readEvent(t, conn)
	assert.Equal(t, EventOnlineUsers, ev.Event)
	assert.ElementsMatch(t, []interface{}{userID.String()}, ev.Data)

	require.Len(t, hub.Registry().Lookup(userID), 1)
}

func TestHandshakeRejectsBadUserID(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	srv := httptest.NewServer(hub.HandleWebSocket(""))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "?userId=not-a-uuid")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEmitDeliversOverWire(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	srv := httptest.NewServer(hub.HandleWebSocket(""))
	defer srv.Close()

	userID := uuid.New()
	conn := dialTestServer(t, srv, userID.String())
	readEvent(t, conn) // initial getOnlineUsers

	hub.Emit(userID, "newMessage", map[string]string{"text": "hi"})

	ev := readEvent(t, conn)
	assert.Equal(t, "newMessage", ev.Event)
	data, ok := ev.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hi", data["text"])
}

func TestDisconnectClearsPresence(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	srv := httptest.NewServer(hub.HandleWebSocket(""))
	defer srv.Close()

	userID := uuid.New()
	conn := dialTestServer(t, srv, userID.String())
	readEvent(t, conn)
	conn.Close()

	require.Eventually(t, func() bool {
		return len(hub.Registry().Lookup(userID)) == 0
	}, 2*time.Second, 10*time.Millisecond, "disconnect should clear the presence entry")
}
