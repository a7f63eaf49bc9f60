package dto

import (
	"time"

	"job-portal-api/internal/models"

	"github.com/google/uuid"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for posting a new job.
// PostedBy is set internally by the handler from the role gate's resolved user.
type CreateJobRequest struct {
	Title            string    `json:"title" validate:"required,max=200"`
	Company          string    `json:"company" validate:"required,max=200"`
	Location         string    `json:"location" validate:"required,max=200"`
	Type             string    `json:"type" validate:"required,max=100"`
	Salary           string    `json:"salary" validate:"omitempty,max=100"`
	Description      string    `json:"description" validate:"required"`
	Requirements     string    `json:"requirements" validate:"required"`
	Responsibilities string    `json:"responsibilities" validate:"required"`
	PostedBy         uuid.UUID `json:"-"`
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// ListJobsRequest defines parameters for the public job listing.
// Query matches title/company/location/type case-insensitively; Sort toggles
// created-time ordering. Status defaults to active when empty.
type ListJobsRequest struct {
	Query  string `form:"q" validate:"omitempty,max=200"`
	Sort   string `form:"sort,default=desc" validate:"omitempty,oneof=asc desc"`
	Status string `form:"status" validate:"omitempty,oneof=draft active closed"`
}

// UpdateJobRequest defines the structure for editing a job posting.
type UpdateJobRequest struct {
	ID               uuid.UUID `json:"-" validate:"required"`
	Title            *string   `json:"title,omitempty" validate:"omitempty,max=200"`
	Company          *string   `json:"company,omitempty" validate:"omitempty,max=200"`
	Location         *string   `json:"location,omitempty" validate:"omitempty,max=200"`
	Type             *string   `json:"type,omitempty" validate:"omitempty,max=100"`
	Salary           *string   `json:"salary,omitempty" validate:"omitempty,max=100"`
	Description      *string   `json:"description,omitempty"`
	Requirements     *string   `json:"requirements,omitempty"`
	Responsibilities *string   `json:"responsibilities,omitempty"`
}

// UpdateJobStatusRequest defines the structure for a job status transition.
type UpdateJobStatusRequest struct {
	ID     uuid.UUID        `json:"-" validate:"required"`
	Status models.JobStatus `json:"status" validate:"required,oneof=draft active closed"`
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Type             string    `json:"type"`
	Salary           string    `json:"salary,omitempty"`
	Description      string    `json:"description"`
	Requirements     string    `json:"requirements"`
	Responsibilities string    `json:"responsibilities"`
	Status           string    `json:"status"`
	PostedBy         uuid.UUID `json:"posted_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
