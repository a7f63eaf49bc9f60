package dto

import "encoding/json"

// Identity provider webhook event types this service reacts to.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// IdentityEvent is the envelope of a signed identity-provider webhook.
type IdentityEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// IdentityEventData is the user payload of user.created/updated/deleted events.
type IdentityEventData struct {
	ID             string `json:"id"`
	EmailAddresses []struct {
		EmailAddress string `json:"email_address"`
	} `json:"email_addresses"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PrimaryEmail returns the first email address of the payload, if any.
func (d *IdentityEventData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}

// FullName joins the name parts the provider supplies, skipping empty ones.
func (d *IdentityEventData) FullName() string {
	switch {
	case d.FirstName != "" && d.LastName != "":
		return d.FirstName + " " + d.LastName
	case d.FirstName != "":
		return d.FirstName
	default:
		return d.LastName
	}
}
