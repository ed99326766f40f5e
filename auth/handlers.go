package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/config"
)

// Handlers exposes the auth endpoints over HTTP.
type Handlers struct {
	service *AuthService
	codec   *TokenCodec
	server  *config.ServerConfig
}

// NewHandlers creates auth Handlers.
func NewHandlers(service *AuthService, codec *TokenCodec, server *config.ServerConfig) *Handlers {
	return &Handlers{service: service, codec: codec, server: server}
}

// setSessionCookie issues the guarded session cookie. The cookie is
// HTTP-only and SameSite=Strict; Secure is dropped only in development so
// the SPA can talk to the API over plain localhost HTTP.
func (h *Handlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.codec.TTL().Seconds()),
		HttpOnly: true,
		Secure:   !h.server.IsDevelopment(),
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   !h.server.IsDevelopment(),
		SameSite: http.SameSiteStrictMode,
	})
}

// HandleSignUp registers an account, signs the caller in, and returns the
// sanitized user with the session cookie set.
func (h *Handlers) HandleSignUp() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.FullName == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("email, fullName, and password are required", nil))
			return
		}
		if len(req.Password) < 6 {
			WriteError(w, r, apperror.NewValidationError("password must be at least 6 characters", nil))
			return
		}

		user, err := h.service.SignUp(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		token, err := h.codec.Issue(user.ID)
		if err != nil {
			WriteError(w, r, apperror.NewInternalError("failed to issue session token", err))
			return
		}

		h.setSessionCookie(w, token)
		WriteJSON(w, http.StatusCreated, UserEnvelope{Status: "success", User: user})
	}
}

// HandleSignIn verifies credentials and sets the session cookie.
func (h *Handlers) HandleSignIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Email == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("email and password are required", nil))
			return
		}

		user, err := h.service.SignIn(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		token, err := h.codec.Issue(user.ID)
		if err != nil {
			WriteError(w, r, apperror.NewInternalError("failed to issue session token", err))
			return
		}

		h.setSessionCookie(w, token)
		WriteJSON(w, http.StatusOK, UserEnvelope{Status: "success", User: user})
	}
}

// HandleSignOut clears the session cookie. The token itself is stateless,
// so there is nothing to revoke server-side.
func (h *Handlers) HandleSignOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.clearSessionCookie(w)
		WriteJSON(w, http.StatusOK, StatusEnvelope{Status: "success"})
	}
}

// HandleCheckAuth returns the current user. It runs behind the session
// guard, so reaching it means the session is valid.
func (h *Handlers) HandleCheckAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("you are not logged in", nil))
			return
		}
		WriteJSON(w, http.StatusOK, UserEnvelope{Status: "success", User: user})
	}
}

// WriteJSON serializes data to the response with the given status. The
// status is committed before encoding, so an encode failure can only be
// logged, not reported to the client.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode response: %v", err)
		}
	}
}

// WriteError maps any error onto the standard failure body. Typed errors
// keep their status and message; everything else collapses into a generic
// 500 so internals never leak.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
