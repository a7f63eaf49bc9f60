package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// SavedJob holds the schema definition for the SavedJob entity,
// a candidate-owned bookmark of a job posting.
type SavedJob struct {
	ent.Schema
}

// Fields of the SavedJob.
func (SavedJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("candidate_id", uuid.UUID{}).StorageKey("candidate_id").Immutable(),
		field.UUID("job_id", uuid.UUID{}).StorageKey("job_id").Immutable(),

		field.Time("created_at").Immutable().Default(time.Now),
	}
}

func (SavedJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "saved_jobs"},
	}
}

// Indexes of the SavedJob.
func (SavedJob) Indexes() []ent.Index {
	return []ent.Index{
		// A candidate bookmarks a job at most once.
		index.Fields("candidate_id", "job_id").Unique(),
	}
}

// Edges of the SavedJob.
func (SavedJob) Edges() []ent.Edge {
	return []ent.Edge{
		// Bookmark belongs to a candidate (User). Required edge.
		edge.From("candidate", User.Type).
			Ref("savedJobs").
			Required().
			Unique().
			Immutable().
			Field("candidate_id"),

		// Bookmark points at a specific Job. Required edge.
		edge.From("job", Job.Type).
			Ref("bookmarks").
			Required().
			Unique().
			Immutable().
			Field("job_id"),
	}
}
