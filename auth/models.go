// Package auth implements account registration, sign-in, session-token
// issuing and verification, and the request guard protecting every
// non-public route.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account. The password hash is excluded from JSON so
// it can never be serialized to a client, whichever handler returns the
// struct.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	HashedPassword string    `json:"-"`
	ProfilePic     string    `json:"profilePic"`
	CreatedAt      time.Time `json:"createdAt"`
}
