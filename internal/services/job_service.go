package services

import (
	"context"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	jobRepo storage.JobRepository
}

// NewJobService creates a new instance of JobService
func NewJobService(jobRepo storage.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) PostJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating job")
	}
	return job, nil
}

func (s *jobService) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job")
	}
	return job, nil
}

func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "updating job")
	}
	return job, nil
}

func (s *jobService) UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*models.Job, error) {
	job, err := s.jobRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, "updating job status")
	}
	return job, nil
}
