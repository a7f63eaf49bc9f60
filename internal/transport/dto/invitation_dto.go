package dto

import (
	"time"

	"github.com/google/uuid"
)

// IssueInvitationRequest defines the structure for issuing an admin invitation.
// IssuerID is set internally from the role gate's resolved user.
type IssueInvitationRequest struct {
	Email    string    `json:"email" validate:"required,email"`
	IssuerID uuid.UUID `json:"-"`
}

// RedeemInvitationRequest defines the structure for redeeming an invitation token.
type RedeemInvitationRequest struct {
	Token string `json:"token" validate:"required,uuid4"`
}

// RevokeInvitationRequest defines the structure for revoking an invitation.
type RevokeInvitationRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// InvitationResponse defines the invitation data returned to admins.
type InvitationResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Token        uuid.UUID `json:"token"`
	Status       string    `json:"status"`
	CreatedBy    uuid.UUID `json:"created_by"`
	CreatorName  string    `json:"creator_name,omitempty"`
	CreatorEmail string    `json:"creator_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IssueInvitationResponse pairs the created invitation with its redemption link.
// The link is the sole credential; it is shared out-of-band, no email is sent.
type IssueInvitationResponse struct {
	Invitation InvitationResponse `json:"invitation"`
	Link       string             `json:"link"`
}
