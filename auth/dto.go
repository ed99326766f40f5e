package auth

// SignUpRequest is the registration payload.
type SignUpRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// SignInRequest is the login payload.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserEnvelope wraps a user in the standard success body.
type UserEnvelope struct {
	Status string `json:"status"`
	User   *User  `json:"user"`
}

// StatusEnvelope is the minimal success body.
type StatusEnvelope struct {
	Status string `json:"status"`
}
