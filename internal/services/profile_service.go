package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"job-portal-api/internal/models"
	"job-portal-api/internal/objectstore"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"
)

// Resumes larger than this are rejected before any storage round-trip.
const maxResumeSize = 5 << 20

// Accepted resume content types (pdf, doc, docx).
var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type profileService struct {
	profileRepo storage.ProfileRepository
	uploader    objectstore.Uploader
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepo storage.ProfileRepository, uploader objectstore.Uploader) ProfileService {
	return &profileService{profileRepo: profileRepo, uploader: uploader}
}

func (s *profileService) Get(ctx context.Context, req *dto.GetProfileByUserRequest) (*models.CandidateProfile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, mapRepoError(err, "getting profile")
	}
	return profile, nil
}

// Save upserts a candidate's profile. A resume file is mandatory on first save;
// on later saves a missing file keeps the previously stored resume untouched.
func (s *profileService) Save(ctx context.Context, req *dto.SaveProfileRequest) (*models.CandidateProfile, error) {
	existing, err := s.profileRepo.GetByUserID(ctx, req.UserID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "looking up existing profile")
	}

	if req.Resume == nil && existing == nil {
		return nil, ErrResumeRequired
	}

	profile := &models.CandidateProfile{
		UserID:         req.UserID,
		Name:           req.Name,
		Age:            req.Age,
		Occupation:     req.Occupation,
		ExperienceBand: req.ExperienceBand,
		Location:       req.Location,
		Bio:            req.Bio,
	}
	if existing != nil {
		profile.ID = existing.ID
		profile.ResumeFileName = existing.ResumeFileName
		profile.ResumeFileURL = existing.ResumeFileURL
	}

	if req.Resume != nil {
		url, err := s.uploadResume(ctx, req)
		if err != nil {
			return nil, err
		}
		profile.ResumeFileName = req.Resume.FileName
		profile.ResumeFileURL = url
	}

	if existing == nil {
		created, err := s.profileRepo.Create(ctx, profile)
		if err != nil {
			return nil, mapRepoError(err, "creating profile")
		}
		return created, nil
	}
	updated, err := s.profileRepo.Update(ctx, profile)
	if err != nil {
		return nil, mapRepoError(err, "updating profile")
	}
	return updated, nil
}

func (s *profileService) uploadResume(ctx context.Context, req *dto.SaveProfileRequest) (string, error) {
	resume := req.Resume
	if !allowedResumeTypes[resume.ContentType] {
		return "", fmt.Errorf("%w: %s", ErrInvalidFile, resume.ContentType)
	}
	if resume.Size > maxResumeSize {
		return "", fmt.Errorf("%w: %d bytes", ErrFileTooLarge, resume.Size)
	}

	objectName := fmt.Sprintf("%s-%d%s", req.UserID, time.Now().UnixNano(), filepath.Ext(resume.FileName))
	url, err := s.uploader.Upload(ctx, objectName, resume.ContentType, resume.Content, resume.Size)
	if err != nil {
		log.Printf("ProfileService: Error uploading resume %s: %v", objectName, err)
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return url, nil
}
