package auth

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/user/chatline-go/apperror"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "access_token"

// UserResolver looks up the account a verified token belongs to. The
// extra resolution step matters: a token can be valid while the account
// has been deleted, which is a 404, not a 401.
type UserResolver interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// SessionGuard is the single authorization gate for protected routes.
// It extracts the session token from the cookie, verifies it, resolves
// the user, and attaches the user to the request context. Each step has a
// distinct terminal failure:
//
//	missing cookie   -> 401 "you are not logged in"
//	bad/expired token -> 401 with the codec's message
//	deleted account  -> 404 "user not found"
func SessionGuard(codec *TokenCodec, resolver UserResolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				WriteError(w, r, apperror.NewAuthError("you are not logged in", nil))
				return
			}

			userID, err := codec.Verify(cookie.Value)
			if err != nil {
				WriteError(w, r, err)
				return
			}

			user, err := resolver.GetUserByID(r.Context(), userID)
			if err != nil {
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUser(r.Context(), user)))
		})
	}
}
