package dto

import (
	"time"

	"github.com/google/uuid"
)

// SaveJobRequest defines the structure for bookmarking a job.
type SaveJobRequest struct {
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	CandidateID uuid.UUID `json:"-" validate:"required"`
}

// RemoveSavedJobRequest defines the structure for deleting a bookmark.
// CandidateID is the requester; ownership is checked before deletion.
type RemoveSavedJobRequest struct {
	ID          uuid.UUID `json:"-" validate:"required"`
	CandidateID uuid.UUID `json:"-" validate:"required"`
}

// ListSavedJobsRequest defines parameters for a candidate's bookmarks.
type ListSavedJobsRequest struct {
	CandidateID uuid.UUID `json:"-" validate:"required"`
}

// SavedJobResponse defines the bookmark data returned to the client.
type SavedJobResponse struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	JobTitle   string    `json:"job_title,omitempty"`
	JobCompany string    `json:"job_company,omitempty"`
	JobStatus  string    `json:"job_status,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
