package auth

import (
	"context"

	"github.com/google/uuid"
)

// UserStore is the persistence boundary for accounts. Implementations map
// driver errors to apperror types: a missing row becomes a NotFoundError,
// a unique violation a ConflictError, anything else a DatabaseError.
type UserStore interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}
