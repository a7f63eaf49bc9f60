package services_test

import (
	"context"
	"errors"
	"io"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock type for the storage.UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]models.User); ok {
		return users, args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return nil, errors.New("mock return value type mismatch for []models.User")
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, identity *dto.Identity, role models.Role) (*models.User, error) {
	args := m.Called(ctx, identity, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProviderFields(ctx context.Context, externalID, email, name string) (*models.User, error) {
	args := m.Called(ctx, externalID, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByExternalID(ctx context.Context, externalID string) error {
	args := m.Called(ctx, externalID)
	return args.Error(0)
}

func (m *MockUserRepository) WithTx(tx pgx.Tx) storage.UserRepository {
	m.Called(tx)
	return m
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

// MockInvitationRepository is a mock type for the storage.InvitationRepository interface
type MockInvitationRepository struct {
	mock.Mock
}

func (m *MockInvitationRepository) Create(ctx context.Context, inv *models.AdminInvitation) (*models.AdminInvitation, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminInvitation), args.Error(1)
}

func (m *MockInvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminInvitation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminInvitation), args.Error(1)
}

func (m *MockInvitationRepository) GetByToken(ctx context.Context, token uuid.UUID) (*models.AdminInvitation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminInvitation), args.Error(1)
}

func (m *MockInvitationRepository) ListWithCreator(ctx context.Context) ([]models.AdminInvitationWithCreator, error) {
	args := m.Called(ctx)
	if invitations, ok := args.Get(0).([]models.AdminInvitationWithCreator); ok {
		return invitations, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockInvitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvitationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockInvitationRepository) WithTx(tx pgx.Tx) storage.InvitationRepository {
	m.Called(tx)
	return m
}

var _ storage.InvitationRepository = (*MockInvitationRepository)(nil)

// MockJobRepository is a mock type for the storage.JobRepository interface
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if jobs, ok := args.Get(0).([]models.Job); ok {
		return jobs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepository) WithTx(tx pgx.Tx) storage.JobRepository {
	m.Called(tx)
	return m
}

var _ storage.JobRepository = (*MockJobRepository)(nil)

// MockApplicationRepository is a mock type for the storage.ApplicationRepository interface
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) GetByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*models.Application, error) {
	args := m.Called(ctx, jobID, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

func (m *MockApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	args := m.Called(ctx, jobID)
	if applications, ok := args.Get(0).([]models.Application); ok {
		return applications, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.ApplicationWithJob, error) {
	args := m.Called(ctx, candidateID)
	if applications, ok := args.Get(0).([]models.ApplicationWithJob); ok {
		return applications, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Application), args.Error(1)
}

var _ storage.ApplicationRepository = (*MockApplicationRepository)(nil)

// MockProfileRepository is a mock type for the storage.ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CandidateProfile), args.Error(1)
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.CandidateProfile) (*models.CandidateProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CandidateProfile), args.Error(1)
}

func (m *MockProfileRepository) Update(ctx context.Context, profile *models.CandidateProfile) (*models.CandidateProfile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CandidateProfile), args.Error(1)
}

var _ storage.ProfileRepository = (*MockProfileRepository)(nil)

// MockSavedJobRepository is a mock type for the storage.SavedJobRepository interface
type MockSavedJobRepository struct {
	mock.Mock
}

func (m *MockSavedJobRepository) Create(ctx context.Context, candidateID, jobID uuid.UUID) (*models.SavedJob, error) {
	args := m.Called(ctx, candidateID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedJob), args.Error(1)
}

func (m *MockSavedJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedJob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedJob), args.Error(1)
}

func (m *MockSavedJobRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.SavedJobWithJob, error) {
	args := m.Called(ctx, candidateID)
	if saved, ok := args.Get(0).([]models.SavedJobWithJob); ok {
		return saved, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSavedJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ storage.SavedJobRepository = (*MockSavedJobRepository)(nil)

// MockUploader is a mock type for the objectstore.Uploader interface
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, objectName, contentType string, content io.Reader, size int64) (string, error) {
	args := m.Called(ctx, objectName, contentType, content, size)
	return args.String(0), args.Error(1)
}

// stubTx is a minimal pgx.Tx for transaction flow tests. Only Commit and
// Rollback are expected to be called; the embedded interface stays nil.
type stubTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *stubTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *stubTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}

// stubTxBeginner hands out the same stubTx on every Begin call.
type stubTxBeginner struct {
	tx *stubTx
}

func (b *stubTxBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	return b.tx, nil
}
