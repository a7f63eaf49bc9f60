package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Application holds the schema definition for the Application entity.
type Application struct {
	ent.Schema
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("job_id", uuid.UUID{}).StorageKey("job_id").Immutable(),
		field.UUID("candidate_id", uuid.UUID{}).StorageKey("candidate_id").Immutable(),

		field.Text("cover_letter").Default(""),

		// Map ApplicationStatus enum to Ent's enum field
		field.Enum("status").
			Values("pending", "reviewing", "interviewing", "rejected", "accepted").
			Default("pending"),

		field.Time("created_at").Immutable().Default(time.Now),
	}
}

// Indexes of the Application.
func (Application) Indexes() []ent.Index {
	return []ent.Index{
		// At most one application per candidate per job. This is the
		// concurrency backstop behind the service-level existence check:
		// two racing inserts resolve to one row and one unique violation.
		index.Fields("job_id", "candidate_id").Unique(),
	}
}

// Edges of the Application.
func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		// Application belongs to a candidate (User). Required edge.
		edge.From("candidate", User.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("candidate_id"),

		// Application is for a specific Job. Required edge.
		edge.From("job", Job.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("job_id"),
	}
}
