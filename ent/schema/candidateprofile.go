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

// CandidateProfile holds the schema definition for the CandidateProfile entity.
type CandidateProfile struct {
	ent.Schema
}

// Fields of the CandidateProfile.
func (CandidateProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		// At most one profile per user.
		field.UUID("user_id", uuid.UUID{}).StorageKey("user_id").Unique().Immutable(),

		field.String("name").NotEmpty(),
		field.Int("age").Min(16).Max(100),
		field.String("occupation"),
		field.String("experience_band"),
		field.String("location"),
		field.Text("bio"),

		// Set on upload; preserved verbatim when the profile is saved without a new file.
		field.String("resume_file_name"),
		field.String("resume_file_url"),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CandidateProfile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "candidate_profiles"},
	}
}

// Edges of the CandidateProfile.
func (CandidateProfile) Edges() []ent.Edge {
	return []ent.Edge{
		// Profile belongs to its user. Required edge.
		edge.From("user", User.Type).
			Ref("profile").
			Required().
			Unique().
			Immutable().
			Field("user_id"),
	}
}
