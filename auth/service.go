package auth

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/user/chatline-go/apperror"
)

// AuthService implements account creation and credential verification on
// top of a UserStore.
type AuthService struct {
	store UserStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// SignUp creates a new account with a hashed password and returns it.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (*User, error) {
	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to process password", err)
	}

	user := &User{
		ID:             uuid.New(),
		Email:          strings.ToLower(req.Email),
		FullName:       req.FullName,
		HashedPassword: hashed,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifies an email/password pair and returns the matching user.
// An unknown email and a wrong password produce the exact same error, so
// a caller cannot probe which accounts exist.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("invalid email or password", nil)
		}
		log.Printf("database error during sign-in lookup: %v", err)
		return nil, err
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, apperror.NewAuthError("invalid email or password", nil)
	}
	return user, nil
}

// GetUserByID resolves a user by id. It satisfies the UserResolver
// interface consumed by the session guard.
func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.store.GetUserByID(ctx, id)
}
