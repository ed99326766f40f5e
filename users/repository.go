// Package users implements the user directory: the sidebar listing of
// chat partners and profile updates.
package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/chatline-go/auth"
)

// UserDirectory is the persistence boundary for directory queries.
// Implementations map driver errors to apperror types.
type UserDirectory interface {
	// ListUsersExcept returns every user except the given one, newest
	// accounts first.
	ListUsersExcept(ctx context.Context, id uuid.UUID) ([]auth.User, error)
	// UpdateProfilePic stores a new profile-picture reference and returns
	// the updated user.
	UpdateProfilePic(ctx context.Context, id uuid.UUID, url string) (*auth.User, error)
}
