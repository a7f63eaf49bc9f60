package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Role Enum ---
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleCandidate, RoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusDraft, JobStatusActive, JobStatusClosed:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending      ApplicationStatus = "pending"
	ApplicationStatusReviewing    ApplicationStatus = "reviewing"
	ApplicationStatusInterviewing ApplicationStatus = "interviewing"
	ApplicationStatusRejected     ApplicationStatus = "rejected"
	ApplicationStatusAccepted     ApplicationStatus = "accepted"
)

// Scan implements the sql.Scanner interface for ApplicationStatus
func (as *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	switch v {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusInterviewing,
		ApplicationStatusRejected, ApplicationStatusAccepted:
		*as = v
		return nil
	default:
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (as ApplicationStatus) Value() (driver.Value, error) {
	return string(as), nil
}

// --- Invitation Status Enum ---
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// Scan implements the sql.Scanner interface for InvitationStatus
func (is *InvitationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan InvitationStatus: value is not string or []byte")
		}
	}
	v := InvitationStatus(strVal)
	switch v {
	case InvitationStatusPending, InvitationStatusAccepted, InvitationStatusExpired:
		*is = v
		return nil
	default:
		return fmt.Errorf("invalid InvitationStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for InvitationStatus
func (is InvitationStatus) Value() (driver.Value, error) {
	return string(is), nil
}

// User represents a user mirrored from the identity provider.
// The provider owns authentication; this row owns the authorization role.
type User struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ExternalID string    `json:"external_id" db:"external_id"` // identity-provider user id, unique
	Email      string    `json:"email" db:"email"`
	Name       string    `json:"name" db:"name"`
	Role       Role      `json:"role" db:"role"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Job represents a job posting created by an admin.
// Jobs are never hard-deleted; closure is a status transition.
type Job struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Company          string    `json:"company" db:"company"`
	Location         string    `json:"location" db:"location"`
	Type             string    `json:"type" db:"type"`
	Salary           string    `json:"salary" db:"salary"`
	Description      string    `json:"description" db:"description"`
	Requirements     string    `json:"requirements" db:"requirements"`
	Responsibilities string    `json:"responsibilities" db:"responsibilities"`
	Status           JobStatus `json:"status" db:"status"`
	PostedBy         uuid.UUID `json:"posted_by" db:"posted_by"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Application represents a candidate's application to a job.
// At most one row exists per (job_id, candidate_id) pair.
type Application struct {
	ID          uuid.UUID         `json:"id" db:"id"`
	JobID       uuid.UUID         `json:"job_id" db:"job_id"`
	CandidateID uuid.UUID         `json:"candidate_id" db:"candidate_id"`
	CoverLetter string            `json:"cover_letter,omitempty" db:"cover_letter"`
	Status      ApplicationStatus `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
}

// ApplicationWithJob is an Application joined with display fields of its job.
type ApplicationWithJob struct {
	Application
	JobTitle   string `json:"job_title" db:"job_title"`
	JobCompany string `json:"job_company" db:"job_company"`
}

// AdminInvitation represents an invitation token that promotes its redeemer to admin.
// Revocation and expiry are status transitions, not row removals.
type AdminInvitation struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	Email     string           `json:"email" db:"email"`
	Token     uuid.UUID        `json:"token" db:"token"`
	CreatedBy uuid.UUID        `json:"created_by" db:"created_by"`
	Status    InvitationStatus `json:"status" db:"status"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
	ExpiresAt time.Time        `json:"expires_at" db:"expires_at"`
}

// AdminInvitationWithCreator is an AdminInvitation joined with the issuing admin.
type AdminInvitationWithCreator struct {
	AdminInvitation
	CreatorName  string `json:"creator_name" db:"creator_name"`
	CreatorEmail string `json:"creator_email" db:"creator_email"`
}

// CandidateProfile represents a candidate's profile, at most one per user.
type CandidateProfile struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Age            int       `json:"age" db:"age"`
	Occupation     string    `json:"occupation" db:"occupation"`
	ExperienceBand string    `json:"experience_band" db:"experience_band"`
	Location       string    `json:"location" db:"location"`
	Bio            string    `json:"bio" db:"bio"`
	ResumeFileName string    `json:"resume_file_name" db:"resume_file_name"`
	ResumeFileURL  string    `json:"resume_file_url" db:"resume_file_url"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// SavedJob represents a candidate-owned bookmark of a job.
type SavedJob struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CandidateID uuid.UUID `json:"candidate_id" db:"candidate_id"`
	JobID       uuid.UUID `json:"job_id" db:"job_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// SavedJobWithJob is a SavedJob joined with display fields of its job.
type SavedJobWithJob struct {
	SavedJob
	JobTitle   string `json:"job_title" db:"job_title"`
	JobCompany string `json:"job_company" db:"job_company"`
	JobStatus  string `json:"job_status" db:"job_status"`
}
