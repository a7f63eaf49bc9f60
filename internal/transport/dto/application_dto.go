package dto

import (
	"time"

	"job-portal-api/internal/models"

	"github.com/google/uuid"
)

// ApplyToJobRequest defines the structure for a candidate applying to a job.
// JobID comes from the URL path, CandidateID from the role gate's resolved user.
type ApplyToJobRequest struct {
	JobID       uuid.UUID `json:"-" validate:"required"`
	CandidateID uuid.UUID `json:"-" validate:"required"`
	CoverLetter string    `json:"cover_letter" validate:"omitempty,max=5000"`
}

// GetApplicationByIDRequest defines the structure for getting an application by ID.
type GetApplicationByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// UpdateApplicationStatusRequest defines the structure for an admin review decision.
type UpdateApplicationStatusRequest struct {
	ID     uuid.UUID                `json:"-" validate:"required"`
	Status models.ApplicationStatus `json:"status" validate:"required,oneof=pending reviewing interviewing rejected accepted"`
}

// ListApplicationsByJobRequest defines parameters for listing a job's applications.
type ListApplicationsByJobRequest struct {
	JobID uuid.UUID `json:"-" validate:"required"`
}

// ListApplicationsByCandidateRequest defines parameters for a candidate's own applications.
type ListApplicationsByCandidateRequest struct {
	CandidateID uuid.UUID `json:"-" validate:"required"`
}

// ApplicationResponse defines the application data returned to the client.
type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ApplicationWithJobResponse adds job display fields for the candidate dashboard.
type ApplicationWithJobResponse struct {
	ApplicationResponse
	JobTitle   string `json:"job_title"`
	JobCompany string `json:"job_company"`
}
