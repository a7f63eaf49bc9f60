package services_test

import (
	"context"
	"testing"

	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupSavedJobService() (*MockSavedJobRepository, *MockJobRepository, services.SavedJobService) {
	savedJobRepo := new(MockSavedJobRepository)
	jobRepo := new(MockJobRepository)
	svc := services.NewSavedJobService(savedJobRepo, jobRepo)
	return savedJobRepo, jobRepo, svc
}

func TestSavedJobService_Save(t *testing.T) {
	jobID := uuid.New()
	candidateID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		savedJobRepo, jobRepo, svc := setupSavedJobService()

		jobRepo.On("GetByID", mock.Anything, jobID).Return(&models.Job{ID: jobID}, nil).Once()
		savedJobRepo.On("Create", mock.Anything, candidateID, jobID).Return(&models.SavedJob{
			ID:          uuid.New(),
			CandidateID: candidateID,
			JobID:       jobID,
		}, nil).Once()

		saved, err := svc.Save(context.Background(), &dto.SaveJobRequest{JobID: jobID, CandidateID: candidateID})

		assert.NoError(t, err)
		assert.Equal(t, jobID, saved.JobID)
		savedJobRepo.AssertExpectations(t)
	})

	t.Run("Duplicate Bookmark", func(t *testing.T) {
		savedJobRepo, jobRepo, svc := setupSavedJobService()

		jobRepo.On("GetByID", mock.Anything, jobID).Return(&models.Job{ID: jobID}, nil).Once()
		savedJobRepo.On("Create", mock.Anything, candidateID, jobID).Return(nil, storage.ErrConflict).Once()

		_, err := svc.Save(context.Background(), &dto.SaveJobRequest{JobID: jobID, CandidateID: candidateID})

		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("Unknown Job", func(t *testing.T) {
		_, jobRepo, svc := setupSavedJobService()

		jobRepo.On("GetByID", mock.Anything, jobID).Return(nil, storage.ErrNotFound).Once()

		_, err := svc.Save(context.Background(), &dto.SaveJobRequest{JobID: jobID, CandidateID: candidateID})

		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestSavedJobService_Remove(t *testing.T) {
	savedID := uuid.New()
	ownerID := uuid.New()

	t.Run("Owner Can Remove", func(t *testing.T) {
		savedJobRepo, _, svc := setupSavedJobService()

		savedJobRepo.On("GetByID", mock.Anything, savedID).Return(&models.SavedJob{
			ID:          savedID,
			CandidateID: ownerID,
		}, nil).Once()
		savedJobRepo.On("Delete", mock.Anything, savedID).Return(nil).Once()

		err := svc.Remove(context.Background(), &dto.RemoveSavedJobRequest{ID: savedID, CandidateID: ownerID})

		assert.NoError(t, err)
		savedJobRepo.AssertExpectations(t)
	})

	t.Run("Non Owner Is Forbidden", func(t *testing.T) {
		savedJobRepo, _, svc := setupSavedJobService()

		savedJobRepo.On("GetByID", mock.Anything, savedID).Return(&models.SavedJob{
			ID:          savedID,
			CandidateID: ownerID,
		}, nil).Once()

		err := svc.Remove(context.Background(), &dto.RemoveSavedJobRequest{ID: savedID, CandidateID: uuid.New()})

		assert.ErrorIs(t, err, services.ErrForbidden)
		savedJobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Bookmark", func(t *testing.T) {
		savedJobRepo, _, svc := setupSavedJobService()

		savedJobRepo.On("GetByID", mock.Anything, savedID).Return(nil, storage.ErrNotFound).Once()

		err := svc.Remove(context.Background(), &dto.RemoveSavedJobRequest{ID: savedID, CandidateID: ownerID})

		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
