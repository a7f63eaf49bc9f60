package services

import (
	"context"

	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
)

// IdentityService is the bridge between the external identity provider and the
// local user mirror. Every protected request resolves through it.
type IdentityService interface {
	// EnsureUser returns the local user for a provider identity, creating it
	// with role=candidate on first sighting. Idempotent per external id.
	EnsureUser(ctx context.Context, identity *dto.Identity) (*models.User, error)
	// HandleProviderEvent applies a verified provider webhook event to the
	// local mirror. Redelivered message ids are dropped.
	HandleProviderEvent(ctx context.Context, messageID, eventType string, data *dto.IdentityEventData) error
}

// UserService defines the interface for admin user management.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, req *dto.UpdateUserRoleRequest) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvitationService defines the interface for the admin invitation lifecycle.
type InvitationService interface {
	Issue(ctx context.Context, req *dto.IssueInvitationRequest) (*models.AdminInvitation, string, error)
	Redeem(ctx context.Context, req *dto.RedeemInvitationRequest, identity *dto.Identity) (*models.User, error)
	Revoke(ctx context.Context, req *dto.RevokeInvitationRequest) error
	List(ctx context.Context) ([]models.AdminInvitationWithCreator, error)
}

// JobService defines the interface for job posting business logic.
type JobService interface {
	PostJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*models.Job, error)
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error)
	Review(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error)
	ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]models.ApplicationWithJob, error)
}

// ProfileService defines the interface for candidate profile business logic.
type ProfileService interface {
	Get(ctx context.Context, req *dto.GetProfileByUserRequest) (*models.CandidateProfile, error)
	Save(ctx context.Context, req *dto.SaveProfileRequest) (*models.CandidateProfile, error)
}

// SavedJobService defines the interface for saved-job bookmark business logic.
type SavedJobService interface {
	Save(ctx context.Context, req *dto.SaveJobRequest) (*models.SavedJob, error)
	List(ctx context.Context, req *dto.ListSavedJobsRequest) ([]models.SavedJobWithJob, error)
	Remove(ctx context.Context, req *dto.RemoveSavedJobRequest) error
}
