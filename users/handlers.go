package users

import (
	"encoding/json"
	"net/http"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/auth"
)

// UserHandlers exposes the user endpoints over HTTP. All routes run
// behind the session guard.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleListUsers returns all users except the caller.
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("you are not logged in", nil))
			return
		}

		list, err := h.service.ListChatPartners(r.Context(), user.ID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, UsersEnvelope{Status: "success", Users: list})
	}
}

// HandleUpdateProfile uploads a new profile picture and returns the
// updated user.
func (h *UserHandlers) HandleUpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("you are not logged in", nil))
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		updated, err := h.service.UpdateProfile(r.Context(), user.ID, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, UserEnvelope{Status: "success", User: updated})
	}
}
