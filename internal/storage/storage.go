package storage

import (
	"context"

	"job-portal-api/internal/models"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, identity *dto.Identity, role models.Role) (*models.User, error)
	UpdateProviderFields(ctx context.Context, externalID, email, name string) (*models.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByExternalID(ctx context.Context, externalID string) error
	WithTx(tx pgx.Tx) UserRepository
}

// InvitationRepository defines the interface for admin invitation data operations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *models.AdminInvitation) (*models.AdminInvitation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminInvitation, error)
	GetByToken(ctx context.Context, token uuid.UUID) (*models.AdminInvitation, error)
	ListWithCreator(ctx context.Context) ([]models.AdminInvitationWithCreator, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvitationStatus) error
	WithTx(tx pgx.Tx) InvitationRepository
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error)
	WithTx(tx pgx.Tx) JobRepository
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.ApplicationWithJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}

// ProfileRepository defines the interface for candidate profile data operations.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CandidateProfile, error)
	Create(ctx context.Context, profile *models.CandidateProfile) (*models.CandidateProfile, error)
	Update(ctx context.Context, profile *models.CandidateProfile) (*models.CandidateProfile, error)
}

// SavedJobRepository defines the interface for saved-job bookmark data operations.
type SavedJobRepository interface {
	Create(ctx context.Context, candidateID, jobID uuid.UUID) (*models.SavedJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SavedJob, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.SavedJobWithJob, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
