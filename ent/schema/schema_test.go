package schema_test

import (
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-portal-api/ent/schema"
)

// The postgres repos map unique violations (23505) to storage.ErrConflict
// and ErrDuplicateEmail. These tests pin the declared constraints those
// mappings rely on.

func findField(t *testing.T, fields []ent.Field, name string) *field.Descriptor {
	t.Helper()
	for _, f := range fields {
		if d := f.Descriptor(); d.Name == name {
			return d
		}
	}
	t.Fatalf("field %q not declared", name)
	return nil
}

func TestUserUniqueConstraints(t *testing.T) {
	fields := schema.User{}.Fields()

	t.Run("Email is unique", func(t *testing.T) {
		assert.True(t, findField(t, fields, "email").Unique)
	})

	t.Run("External id is unique", func(t *testing.T) {
		assert.True(t, findField(t, fields, "external_id").Unique)
	})
}

func TestApplicationUniquePerCandidateAndJob(t *testing.T) {
	// Arrange
	idxs := schema.Application{}.Indexes()
	require.Len(t, idxs, 1)

	// Act
	desc := idxs[0].Descriptor()

	// Assert
	assert.True(t, desc.Unique)
	assert.Equal(t, []string{"job_id", "candidate_id"}, desc.Fields)
}

func TestSavedJobUniquePerCandidateAndJob(t *testing.T) {
	idxs := schema.SavedJob{}.Indexes()
	require.Len(t, idxs, 1)

	desc := idxs[0].Descriptor()
	assert.True(t, desc.Unique)
	assert.Equal(t, []string{"candidate_id", "job_id"}, desc.Fields)
}

func TestInvitationTokenUnique(t *testing.T) {
	// Tokens are never reused, even across expired invitations.
	assert.True(t, findField(t, schema.AdminInvitation{}.Fields(), "token").Unique)
}

func TestProfileUniquePerUser(t *testing.T) {
	assert.True(t, findField(t, schema.CandidateProfile{}.Fields(), "user_id").Unique)
}
