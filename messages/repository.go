package messages

import (
	"context"

	"github.com/google/uuid"
)

// MessageStore is the persistence boundary for messages. Implementations
// map driver failures to apperror.DatabaseError.
type MessageStore interface {
	CreateMessage(ctx context.Context, msg *Message) error
	// GetConversation returns both directions of the exchange between two
	// users, oldest first.
	GetConversation(ctx context.Context, a, b uuid.UUID) ([]Message, error)
}

// EventNewMessage is the event name under which a delivered message is
// pushed to the receiver's live connections.
const EventNewMessage = "newMessage"

// Pusher delivers an event to a user's live connections, if any. The
// realtime hub satisfies this; tests substitute a recorder.
type Pusher interface {
	Emit(userID uuid.UUID, event string, data interface{})
}
