package services

import (
	"context"
	"errors"
	"fmt"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"
)

type applicationService struct {
	applicationRepo storage.ApplicationRepository
	jobRepo         storage.JobRepository
}

// NewApplicationService creates a new instance of ApplicationService
func NewApplicationService(applicationRepo storage.ApplicationRepository, jobRepo storage.JobRepository) ApplicationService {
	return &applicationService{applicationRepo: applicationRepo, jobRepo: jobRepo}
}

// Apply records a candidate's application. The target job must exist and be
// active, and a candidate can hold at most one application per job; the unique
// index backs the pre-check under concurrent submits.
func (s *applicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "looking up job for application")
	}
	if job.Status != models.JobStatusActive {
		return nil, fmt.Errorf("%w: job is not accepting applications", ErrConflict)
	}

	_, err = s.applicationRepo.GetByJobAndCandidate(ctx, req.JobID, req.CandidateID)
	if err == nil {
		return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking existing application")
	}

	application, err := s.applicationRepo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: already applied to this job", ErrConflict)
		}
		return nil, mapRepoError(err, "creating application")
	}
	return application, nil
}

func (s *applicationService) Review(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	application, err := s.applicationRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, "updating application status")
	}
	return application, nil
}

func (s *applicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error) {
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, mapRepoError(err, "looking up job for applications")
	}
	applications, err := s.applicationRepo.ListByJob(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, "listing applications by job")
	}
	return applications, nil
}

func (s *applicationService) ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]models.ApplicationWithJob, error) {
	applications, err := s.applicationRepo.ListByCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, mapRepoError(err, "listing applications by candidate")
	}
	return applications, nil
}
