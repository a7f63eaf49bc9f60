package services

import "errors"

// Define common service errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("conflict") // e.g., duplicate email, already applied
	ErrValidation        = errors.New("validation failed")
	ErrInvitationExpired = errors.New("invitation expired or already used")
	ErrResumeRequired    = errors.New("resume file required")
	ErrInvalidFile       = errors.New("invalid file type")
	ErrFileTooLarge      = errors.New("file too large")
	ErrStorage           = errors.New("object storage failure")
)
