package dto

import (
	"time"

	"job-portal-api/internal/models"

	"github.com/google/uuid"
)

// Identity carries the fields the identity provider asserts about a session.
// It is the input of the identity bridge; the local user row is derived from it.
type Identity struct {
	ExternalID string `json:"external_id" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Name       string `json:"name" validate:"omitempty,max=200"`
}

// GetUserByIdRequest defines the structure for getting a user by id.
type GetUserByIdRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// UpdateUserRoleRequest defines the structure for an explicit admin role change.
type UpdateUserRoleRequest struct {
	ID   uuid.UUID   `json:"-" validate:"required"`
	Role models.Role `json:"role" validate:"required,oneof=candidate admin"`
}

// DeleteUserRequest defines the structure for deleting a user.
type DeleteUserRequest struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// UserResponse defines the user data returned to the client.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      models.Role `json:"role"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
