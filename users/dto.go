package users

import "github.com/user/chatline-go/auth"

// UpdateProfileRequest carries a new profile picture as a base64 data URI.
type UpdateProfileRequest struct {
	ProfilePic string `json:"profilePic"`
}

// UsersEnvelope wraps the sidebar listing in the standard success body.
type UsersEnvelope struct {
	Status string      `json:"status"`
	Users  []auth.User `json:"users"`
}

// UserEnvelope wraps a single user in the standard success body.
type UserEnvelope struct {
	Status string     `json:"status"`
	User   *auth.User `json:"user"`
}
