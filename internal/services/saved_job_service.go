package services

import (
	"context"
	"errors"
	"fmt"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"
)

type savedJobService struct {
	savedJobRepo storage.SavedJobRepository
	jobRepo      storage.JobRepository
}

// NewSavedJobService creates a new instance of SavedJobService
func NewSavedJobService(savedJobRepo storage.SavedJobRepository, jobRepo storage.JobRepository) SavedJobService {
	return &savedJobService{savedJobRepo: savedJobRepo, jobRepo: jobRepo}
}

// Save bookmarks a job for a candidate. Bookmarking the same job twice is a conflict.
func (s *savedJobService) Save(ctx context.Context, req *dto.SaveJobRequest) (*models.SavedJob, error) {
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, mapRepoError(err, "looking up job for bookmark")
	}
	saved, err := s.savedJobRepo.Create(ctx, req.CandidateID, req.JobID)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: job already saved", ErrConflict)
		}
		return nil, mapRepoError(err, "saving job")
	}
	return saved, nil
}

func (s *savedJobService) List(ctx context.Context, req *dto.ListSavedJobsRequest) ([]models.SavedJobWithJob, error) {
	saved, err := s.savedJobRepo.ListByCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, mapRepoError(err, "listing saved jobs")
	}
	return saved, nil
}

// Remove deletes a bookmark. Only the owning candidate may remove it.
func (s *savedJobService) Remove(ctx context.Context, req *dto.RemoveSavedJobRequest) error {
	saved, err := s.savedJobRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, "looking up saved job")
	}
	if saved.CandidateID != req.CandidateID {
		return ErrForbidden
	}
	if err := s.savedJobRepo.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err, "removing saved job")
	}
	return nil
}
