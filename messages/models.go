// Package messages implements conversation history and the message
// dispatcher: persisting new messages and routing them to the receiver's
// live connections when one exists.
package messages

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single chat message. Messages are immutable once created;
// Text and Image are each optional but never both empty.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"senderId"`
	ReceiverID uuid.UUID `json:"receiverId"`
	Text       string    `json:"text,omitempty"`
	Image      string    `json:"image,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
