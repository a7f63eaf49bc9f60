package handlers_test

import (
	"context"

	"job-portal-api/internal/models"
	"job-portal-api/internal/services"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockJobService is a mock type for the services.JobService interface
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) PostJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if jobs, ok := args.Get(0).([]models.Job); ok {
		return jobs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

var _ services.JobService = (*MockJobService)(nil)

// MockApplicationService is a mock type for the services.ApplicationService interface
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) Review(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]models.Application, error) {
	args := m.Called(ctx, req)
	if applications, ok := args.Get(0).([]models.Application); ok {
		return applications, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationService) ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]models.ApplicationWithJob, error) {
	args := m.Called(ctx, req)
	if applications, ok := args.Get(0).([]models.ApplicationWithJob); ok {
		return applications, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ services.ApplicationService = (*MockApplicationService)(nil)

// MockInvitationService is a mock type for the services.InvitationService interface
type MockInvitationService struct {
	mock.Mock
}

func (m *MockInvitationService) Issue(ctx context.Context, req *dto.IssueInvitationRequest) (*models.AdminInvitation, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.AdminInvitation), args.String(1), args.Error(2)
}

func (m *MockInvitationService) Redeem(ctx context.Context, req *dto.RedeemInvitationRequest, identity *dto.Identity) (*models.User, error) {
	args := m.Called(ctx, req, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockInvitationService) Revoke(ctx context.Context, req *dto.RevokeInvitationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockInvitationService) List(ctx context.Context) ([]models.AdminInvitationWithCreator, error) {
	args := m.Called(ctx)
	if invitations, ok := args.Get(0).([]models.AdminInvitationWithCreator); ok {
		return invitations, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ services.InvitationService = (*MockInvitationService)(nil)
