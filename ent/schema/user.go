package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		// Use field.UUID for the primary key, Ent handles the default generation if not provided
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		// Identity-provider user id. One local row per provider identity,
		// enforced at the store so concurrent first sightings collapse to one row.
		field.String("external_id").Unique().NotEmpty().Immutable(),

		// Corresponds to Email string in models.User, add Unique constraint
		field.String("email").Unique().NotEmpty(),

		field.String("name"),

		// Map Role enum to Ent's enum field
		field.Enum("role").
			Values("candidate", "admin").
			Default("candidate"),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User. Define relationships here.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// Admin posts jobs.
		edge.To("postedJobs", Job.Type),

		// Candidate-owned rows go with the user.
		edge.To("applications", Application.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("savedJobs", SavedJob.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("profile", CandidateProfile.Type).Unique().Annotations(entsql.OnDelete(entsql.Cascade)),

		// Issued invitations stay as audit trail.
		edge.To("issuedInvitations", AdminInvitation.Type),
	}
}
