package models_test

import (
	"testing"

	"job-portal-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRoleScan(t *testing.T) {
	t.Run("Valid String", func(t *testing.T) {
		var role models.Role
		err := role.Scan("admin")
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, role)
	})

	t.Run("Valid Bytes", func(t *testing.T) {
		var role models.Role
		err := role.Scan([]byte("candidate"))
		assert.NoError(t, err)
		assert.Equal(t, models.RoleCandidate, role)
	})

	t.Run("Invalid Value", func(t *testing.T) {
		var role models.Role
		err := role.Scan("superuser")
		assert.Error(t, err)
	})
}

func TestInvitationStatusScan(t *testing.T) {
	for _, valid := range []string{"pending", "accepted", "expired"} {
		var status models.InvitationStatus
		assert.NoError(t, status.Scan(valid))
		assert.Equal(t, models.InvitationStatus(valid), status)
	}

	var status models.InvitationStatus
	assert.Error(t, status.Scan("revoked"))
}

func TestApplicationStatusScan(t *testing.T) {
	for _, valid := range []string{"pending", "reviewing", "interviewing", "rejected", "accepted"} {
		var status models.ApplicationStatus
		assert.NoError(t, status.Scan(valid))
		assert.Equal(t, models.ApplicationStatus(valid), status)
	}

	var status models.ApplicationStatus
	assert.Error(t, status.Scan("ghosted"))
}

func TestJobStatusValue(t *testing.T) {
	v, err := models.JobStatusActive.Value()
	assert.NoError(t, err)
	assert.Equal(t, "active", v)
}
