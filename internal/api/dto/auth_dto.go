package dto

import "github.com/leaselink/leaselink/internal/domain"

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest payload. Role defaults to STAFF when omitted.
type RegisterRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// UserResponse is the sanitized user shape; the credential field never
// appears in responses.
type UserResponse struct {
	ID    int64       `json:"id"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

// NewUserResponse maps an identity to the response shape.
func NewUserResponse(identity domain.Identity) UserResponse {
	return UserResponse{ID: identity.ID, Email: identity.Email, Role: identity.Role}
}
