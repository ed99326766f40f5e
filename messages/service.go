package messages

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/assets"
)

// Service is the message dispatcher. Send runs a fixed pipeline: validate,
// resolve the image through the asset store, persist, then push to the
// receiver's live connections. Persistence always precedes the push, and
// the push outcome is never part of the send result.
type Service struct {
	store    MessageStore
	uploader assets.Uploader
	pusher   Pusher
}

// NewService creates a message Service.
func NewService(store MessageStore, uploader assets.Uploader, pusher Pusher) *Service {
	return &Service{store: store, uploader: uploader, pusher: pusher}
}

// GetConversation returns the full exchange between the current user and
// another user, oldest first.
func (s *Service) GetConversation(ctx context.Context, userID, otherID uuid.UUID) ([]Message, error) {
	return s.store.GetConversation(ctx, userID, otherID)
}

// Send creates a message from sender to receiver.
//
// An image payload is uploaded first; if that fails nothing is persisted.
// If persistence fails nothing is delivered. After a successful persist
// the message is pushed to the receiver when online, best-effort — a
// missed push is fine because the stored history remains fetchable.
func (s *Service) Send(ctx context.Context, senderID, receiverID uuid.UUID, req SendMessageRequest) (*Message, error) {
	if req.Text == "" && req.Image == "" {
		return nil, apperror.NewValidationError("message must contain text or an image", nil)
	}

	var imageURL string
	if req.Image != "" {
		url, err := s.uploader.Upload(ctx, req.Image)
		if err != nil {
			return nil, apperror.NewExternalServiceError("failed to upload image", err)
		}
		imageURL = url
	}

	msg := &Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       req.Text,
		Image:      imageURL,
	}
	if err := s.store.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	s.pusher.Emit(receiverID, EventNewMessage, msg)
	return msg, nil
}
