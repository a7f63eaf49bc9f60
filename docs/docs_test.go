package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "job-portal-api/docs"
)

// The swagger UI route serves whatever spec is registered with swag.
// This pins that the committed docs actually register and cover the API.
func TestSwaggerDocRegistered(t *testing.T) {
	// Act
	doc, err := swag.ReadDoc()

	// Assert
	require.NoError(t, err)

	var spec struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	assert.Equal(t, "/api/v1", spec.BasePath)
	for _, path := range []string{
		"/jobs",
		"/jobs/{id}",
		"/jobs/{id}/applications",
		"/jobs/{id}/status",
		"/applications",
		"/applications/{id}/status",
		"/profile",
		"/saved-jobs",
		"/saved-jobs/{id}",
		"/users",
		"/users/{id}",
		"/users/{id}/role",
		"/invitations",
		"/invitations/{id}",
		"/invitations/redeem",
		"/webhooks/identity",
		"/health",
	} {
		assert.Contains(t, spec.Paths, path)
	}
}
