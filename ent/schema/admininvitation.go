package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// AdminInvitation holds the schema definition for the AdminInvitation entity.
// Revocation and expiry are status transitions; rows are never removed.
type AdminInvitation struct {
	ent.Schema
}

// Fields of the AdminInvitation.
func (AdminInvitation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("email").NotEmpty(),

		// Tokens are unique across all invitations regardless of status;
		// a token is never reused even after expiry.
		field.UUID("token", uuid.UUID{}).Unique().Immutable(),

		field.UUID("created_by", uuid.UUID{}).StorageKey("created_by").Immutable(),

		// Map InvitationStatus enum to Ent's enum field
		field.Enum("status").
			Values("pending", "accepted", "expired").
			Default("pending"),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("expires_at").Immutable(),
	}
}

func (AdminInvitation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "admin_invitations"},
	}
}

// Edges of the AdminInvitation.
func (AdminInvitation) Edges() []ent.Edge {
	return []ent.Edge{
		// Invitation belongs to the admin who issued it. Required edge.
		edge.From("creator", User.Type).
			Ref("issuedInvitations").
			Required().
			Unique().
			Immutable().
			Field("created_by"),
	}
}
