package messages

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/auth"
)

// Handlers exposes the message endpoints over HTTP. All routes run behind
// the session guard.
type Handlers struct {
	service *Service
}

// NewHandlers creates message Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the message routes on a guarded router.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/{id}", h.HandleGetMessages())
	r.Post("/send/{id}", h.HandleSendMessage())
}

// HandleGetMessages returns the conversation between the current user and
// the user named in the path.
func (h *Handlers) HandleGetMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("you are not logged in", nil))
			return
		}
		otherID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid user id", err))
			return
		}

		msgs, err := h.service.GetConversation(r.Context(), user.ID, otherID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, MessagesEnvelope{Status: "success", Messages: msgs})
	}
}

// HandleSendMessage dispatches a message to the user named in the path.
func (h *Handlers) HandleSendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("you are not logged in", nil))
			return
		}
		receiverID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid user id", err))
			return
		}

		var req SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		msg, err := h.service.Send(r.Context(), user.ID, receiverID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, MessageEnvelope{Status: "success", Message: msg})
	}
}
