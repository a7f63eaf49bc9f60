package dto

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// ResumeUpload carries an uploaded resume file through the service layer.
type ResumeUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// SaveProfileRequest defines the structure for creating or updating a candidate profile.
// UserID is set internally from the role gate's resolved user; Resume is optional
// once a profile exists.
type SaveProfileRequest struct {
	UserID         uuid.UUID     `form:"-" validate:"required"`
	Name           string        `form:"name" validate:"required,max=200"`
	Age            int           `form:"age" validate:"required,gte=16,lte=100"`
	Occupation     string        `form:"occupation" validate:"omitempty,max=200"`
	ExperienceBand string        `form:"experience_band" validate:"omitempty,max=100"`
	Location       string        `form:"location" validate:"omitempty,max=200"`
	Bio            string        `form:"bio" validate:"omitempty,max=5000"`
	Resume         *ResumeUpload `form:"-" validate:"-"`
}

// GetProfileByUserRequest defines the structure for fetching a user's profile.
type GetProfileByUserRequest struct {
	UserID uuid.UUID `json:"-" validate:"required"`
}

// ProfileResponse defines the profile data returned to the client.
type ProfileResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Age            int       `json:"age"`
	Occupation     string    `json:"occupation,omitempty"`
	ExperienceBand string    `json:"experience_band,omitempty"`
	Location       string    `json:"location,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ResumeFileName string    `json:"resume_file_name,omitempty"`
	ResumeFileURL  string    `json:"resume_file_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
