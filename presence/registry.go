// Package presence tracks which users currently hold a live connection.
// The registry is the only cross-request shared mutable state in the
// system; it is an explicitly constructed, injectable value rather than a
// package-level singleton, so tests can build isolated instances.
package presence

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps user ids to their active connection ids. A user may hold
// several connections at once (multiple devices or tabs); the user counts
// as online while at least one connection remains.
type Registry struct {
	mu sync.RWMutex
	// byUser holds the connection-id set per online user.
	byUser map[uuid.UUID]map[string]struct{}
	// byConn points each connection back to its user for O(1) disconnect.
	byConn map[string]uuid.UUID
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[uuid.UUID]map[string]struct{}),
		byConn: make(map[string]uuid.UUID),
	}
}

// Connect registers a connection for a user.
func (r *Registry) Connect(userID uuid.UUID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byConn[connID]; ok {
		// A reused connection id moves to the new user.
		delete(r.byUser[old], connID)
		if len(r.byUser[old]) == 0 {
			delete(r.byUser, old)
		}
	}
	conns, ok := r.byUser[userID]
	if !ok {
		conns = make(map[string]struct{})
		r.byUser[userID] = conns
	}
	conns[connID] = struct{}{}
	r.byConn[connID] = userID
}

// Disconnect removes a connection. It returns the user the connection
// belonged to and whether it was that user's last connection. Unknown
// connection ids return ok=false.
func (r *Registry) Disconnect(connID string) (userID uuid.UUID, last bool, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok = r.byConn[connID]
	if !ok {
		return uuid.Nil, false, false
	}
	delete(r.byConn, connID)
	delete(r.byUser[userID], connID)
	if len(r.byUser[userID]) == 0 {
		delete(r.byUser, userID)
		last = true
	}
	return userID, last, true
}

// Lookup returns the connection ids a user currently holds. An empty
// slice means the user is offline; absence is not an error, it just means
// no live push.
func (r *Registry) Lookup(userID uuid.UUID) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conns, ok := r.byUser[userID]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(conns))
	for connID := range conns {
		out = append(out, connID)
	}
	return out
}

// OnlineUsers returns the ids of all users with at least one connection.
func (r *Registry) OnlineUsers() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]uuid.UUID, 0, len(r.byUser))
	for userID := range r.byUser {
		out = append(out, userID)
	}
	return out
}
