// Package realtime implements the live-push channel: a WebSocket hub that
// tracks connected clients through the presence registry and delivers
// server-initiated events to specific users.
package realtime

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/user/chatline-go/presence"
)

// Hub owns the set of live client connections and the presence registry.
// Registry mutation and the resulting online-users broadcast happen under
// one lock window, so concurrent connects and disconnects can never
// publish a stale online list.
type Hub struct {
	registry *presence.Registry

	mu      sync.RWMutex
	clients map[string]*Client // keyed by connection id
}

// NewHub creates a Hub around the given presence registry.
func NewHub(registry *presence.Registry) *Hub {
	return &Hub{
		registry: registry,
		clients:  make(map[string]*Client),
	}
}

// Registry exposes the hub's presence registry for read-side lookups.
func (h *Hub) Registry() *presence.Registry {
	return h.registry
}

// register adds a client, records its presence, and broadcasts the
// updated online set to everyone.
func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c.ID] = c
	h.registry.Connect(c.UserID, c.ID)
	log.Printf("live connection %s opened for user %s (%d online)", c.ID, c.UserID, len(h.clients))
	h.broadcastOnlineUsersLocked()
}

// unregister removes a client, clears its presence entry, and broadcasts
// the updated online set. Safe to call more than once per client.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.ID]; !ok {
		return
	}
	delete(h.clients, c.ID)
	h.registry.Disconnect(c.ID)
	close(c.send)
	log.Printf("live connection %s closed for user %s (%d online)", c.ID, c.UserID, len(h.clients))
	h.broadcastOnlineUsersLocked()
}

// broadcastOnlineUsersLocked pushes the full online id set to every
// connection. Callers must hold h.mu.
func (h *Hub) broadcastOnlineUsersLocked() {
	online := h.registry.OnlineUsers()
	ids := make([]string, 0, len(online))
	for _, id := range online {
		ids = append(ids, id.String())
	}

	payload, err := json.Marshal(Event{Event: EventOnlineUsers, Data: ids})
	if err != nil {
		log.Printf("failed to encode online-users event: %v", err)
		return
	}
	for _, client := range h.clients {
		client.trySend(payload)
	}
}

// Emit delivers an event to every live connection of one user. Delivery
// is best-effort: an offline user or a saturated connection buffer drops
// the frame without error, since persisted state remains fetchable.
func (h *Hub) Emit(userID uuid.UUID, event string, data interface{}) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		log.Printf("failed to encode %s event: %v", event, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, connID := range h.registry.Lookup(userID) {
		if client, ok := h.clients[connID]; ok {
			client.trySend(payload)
		}
	}
}

// Shutdown closes every live connection. Each client's read pump observes
// the close and unregisters itself.
func (h *Hub) Shutdown() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if c.conn != nil {
			if err := c.conn.Close(); err != nil {
				log.Printf("error closing connection %s: %v", c.ID, err)
			}
		}
	}
	log.Printf("closed %d live connections", len(clients))
}
