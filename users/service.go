package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/assets"
	"github.com/user/chatline-go/auth"
)

// UserService provides the sidebar listing and profile updates.
type UserService struct {
	directory UserDirectory
	uploader  assets.Uploader
}

// NewUserService creates a UserService.
func NewUserService(directory UserDirectory, uploader assets.Uploader) *UserService {
	return &UserService{directory: directory, uploader: uploader}
}

// ListChatPartners returns every user except the caller, for the
// conversation sidebar.
func (s *UserService) ListChatPartners(ctx context.Context, currentUserID uuid.UUID) ([]auth.User, error) {
	return s.directory.ListUsersExcept(ctx, currentUserID)
}

// UpdateProfile uploads the submitted profile picture and stores the
// resulting reference. An upload failure aborts the update; the previous
// picture stays in place.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*auth.User, error) {
	if req.ProfilePic == "" {
		return nil, apperror.NewValidationError("profilePic is required", nil)
	}

	url, err := s.uploader.Upload(ctx, req.ProfilePic)
	if err != nil {
		return nil, apperror.NewExternalServiceError("failed to upload profile picture", err)
	}

	return s.directory.UpdateProfilePic(ctx, userID, url)
}
