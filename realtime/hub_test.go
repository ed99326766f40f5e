package realtime

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/chatline-go/presence"
)

// testClient creates a client without a network connection; frames are
// read straight off its send channel.
func testClient(hub *Hub, userID uuid.UUID) *Client {
	return newClient(hub, nil, userID)
}

func drain(t *testing.T, c *Client) []Event {
	t.Helper()
	var events []Event
	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				return events
			}
			var ev Event
			require.NoError(t, json.Unmarshal(payload, &ev))
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestRegisterBroadcastsOnlineUsers(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	alice, bob := uuid.New(), uuid.New()

	cA := testClient(hub, alice)
	hub.register(cA)

	events := drain(t, cA)
	require.Len(t, events, 1)
	assert.Equal(t, EventOnlineUsers, events[0].Event)
	assert.ElementsMatch(t, []interface{}{alice.String()}, events[0].Data)

	cB := testClient(hub, bob)
	hub.register(cB)

	// Both connections see the updated set.
	for _, c := range []*Client{cA, cB} {
		events = drain(t, c)
		require.Len(t, events, 1)
		assert.Equal(t, EventOnlineUsers, events[0].Event)
		assert.ElementsMatch(t, []interface{}{alice.String(), bob.String()}, events[0].Data)
	}
}

func TestUnregisterBroadcastsOnlineUsers(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	alice, bob := uuid.New(), uuid.New()

	cA := testClient(hub, alice)
	cB := testClient(hub, bob)
	hub.register(cA)
	hub.register(cB)
	drain(t, cA)
	drain(t, cB)

	hub.unregister(cB)

	events := drain(t, cA)
	require.Len(t, events, 1)
	assert.Equal(t, EventOnlineUsers, events[0].Event)
	assert.ElementsMatch(t, []interface{}{alice.String()}, events[0].Data)

	assert.Empty(t, hub.Registry().Lookup(bob))
}

func TestUnregisterTwiceIsSafe(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	c := testClient(hub, uuid.New())
	hub.register(c)

	hub.unregister(c)
	assert.NotPanics(t, func() { hub.unregister(c) })
}

func TestEmitReachesOnlyTargetUser(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	alice, bob := uuid.New(), uuid.New()

	cA := testClient(hub, alice)
	cB := testClient(hub, bob)
	hub.register(cA)
	hub.register(cB)
	drain(t, cA)
	drain(t, cB)

	hub.Emit(bob, "newMessage", map[string]string{"text": "hi"})

	assert.Empty(t, drain(t, cA), "sender-side connection gets nothing")

	events := drain(t, cB)
	require.Len(t, events, 1)
	assert.Equal(t, "newMessage", events[0].Event)
	data, ok := events[0].Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hi", data["text"])
}

func TestEmitToOfflineUserIsNoOp(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	alice := uuid.New()

	cA := testClient(hub, alice)
	hub.register(cA)
	drain(t, cA)

	assert.NotPanics(t, func() {
		hub.Emit(uuid.New(), "newMessage", map[string]string{"text": "hi"})
	})
	assert.Empty(t, drain(t, cA))
}

// After a user disconnects, further emits for them go nowhere.
func TestEmitAfterDisconnect(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	alice, bob := uuid.New(), uuid.New()

	cA := testClient(hub, alice)
	cB := testClient(hub, bob)
	hub.register(cA)
	hub.register(cB)
	hub.unregister(cB)
	drain(t, cA)

	assert.NotPanics(t, func() {
		hub.Emit(bob, "newMessage", map[string]string{"text": "hi"})
	})
	assert.Empty(t, drain(t, cA))
}

// Multi-device: an emit reaches every live connection of the user.
func TestEmitReachesAllConnectionsOfUser(t *testing.T) {
	hub := NewHub(presence.NewRegistry())
	bob := uuid.New()

	c1 := testClient(hub, bob)
	c2 := testClient(hub, bob)
	hub.register(c1)
	hub.register(c2)
	drain(t, c1)
	drain(t, c2)

	hub.Emit(bob, "newMessage", map[string]string{"text": "hi"})

	for _, c := range []*Client{c1, c2} {
		events := drain(t, c)
		require.Len(t, events, 1)
		assert.Equal(t, "newMessage", events[0].Event)
	}
}
