package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("title").NotEmpty(),
		field.String("company").NotEmpty(),
		field.String("location"),
		field.String("type"),
		field.String("salary"),

		field.Text("description"),
		field.Text("requirements"),
		field.Text("responsibilities"),

		// Map JobStatus enum to Ent's enum field. Closure is a status
		// transition; job rows are never removed.
		field.Enum("status").
			Values("draft", "active", "closed").
			Default("draft"),

		field.UUID("posted_by", uuid.UUID{}).StorageKey("posted_by").Immutable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// Job belongs to the admin who posted it. Required edge.
		edge.From("poster", User.Type).
			Ref("postedJobs").
			Required().
			Unique().
			Immutable().
			Field("posted_by"),

		// Job has multiple applications and bookmarks.
		edge.To("applications", Application.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("bookmarks", SavedJob.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
