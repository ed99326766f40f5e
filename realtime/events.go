package realtime

// EventOnlineUsers carries the full set of online user ids. It is emitted
// to every connection on each connect and disconnect. Other event names
// are chosen by the callers of Emit.
const EventOnlineUsers = "getOnlineUsers"

// Event is the JSON envelope for every server-to-client frame.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
