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

func TestIdentityService_EnsureUser(t *testing.T) {
	identity := &dto.Identity{ExternalID: "usr_first", Email: "first@example.com", Name: "First Sighting"}

	t.Run("First Sighting Creates Candidate", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := services.NewIdentityService(userRepo, nil)

		userRepo.On("GetByExternalID", mock.Anything, "usr_first").Return(nil, storage.ErrNotFound).Once()
		userRepo.On("Create", mock.Anything, identity, models.RoleCandidate).Return(&models.User{
			ID:         uuid.New(),
			ExternalID: "usr_first",
			Email:      "first@example.com",
			Role:       models.RoleCandidate,
		}, nil).Once()

		user, err := svc.EnsureUser(context.Background(), identity)

		assert.NoError(t, err)
		assert.Equal(t, models.RoleCandidate, user.Role)
		userRepo.AssertExpectations(t)
	})

	t.Run("Existing User Is Returned Without Create", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := services.NewIdentityService(userRepo, nil)
		existing := &models.User{
			ID:         uuid.New(),
			ExternalID: "usr_first",
			Email:      "first@example.com",
			Name:       "First Sighting",
			Role:       models.RoleAdmin,
		}

		userRepo.On("GetByExternalID", mock.Anything, "usr_first").Return(existing, nil).Once()

		user, err := svc.EnsureUser(context.Background(), identity)

		assert.NoError(t, err)
		// The stored role survives; it is never reset by repeat sightings.
		assert.Equal(t, models.RoleAdmin, user.Role)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Changed Email Is Refreshed", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := services.NewIdentityService(userRepo, nil)
		existing := &models.User{
			ID:         uuid.New(),
			ExternalID: "usr_first",
			Email:      "stale@example.com",
			Name:       "First Sighting",
			Role:       models.RoleCandidate,
		}

		userRepo.On("GetByExternalID", mock.Anything, "usr_first").Return(existing, nil).Once()
		userRepo.On("UpdateProviderFields", mock.Anything, "usr_first", "first@example.com", "First Sighting").Return(&models.User{
			ID:         existing.ID,
			ExternalID: "usr_first",
			Email:      "first@example.com",
			Name:       "First Sighting",
			Role:       models.RoleCandidate,
		}, nil).Once()

		user, err := svc.EnsureUser(context.Background(), identity)

		assert.NoError(t, err)
		assert.Equal(t, "first@example.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("Concurrent First Sighting Falls Back To Lookup", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := services.NewIdentityService(userRepo, nil)
		raced := &models.User{
			ID:         uuid.New(),
			ExternalID: "usr_first",
			Email:      "first@example.com",
			Role:       models.RoleCandidate,
		}

		userRepo.On("GetByExternalID", mock.Anything, "usr_first").Return(nil, storage.ErrNotFound).Once()
		userRepo.On("Create", mock.Anything, identity, models.RoleCandidate).Return(nil, storage.ErrConflict).Once()
		userRepo.On("GetByExternalID", mock.Anything, "usr_first").Return(raced, nil).Once()

		user, err := svc.EnsureUser(context.Background(), identity)

		assert.NoError(t, err)
		assert.Equal(t, raced.ID, user.ID)
		userRepo.AssertExpectations(t)
	})
}

func TestIdentityService_HandleProviderEvent(t *testing.T) {
	data := &dto.IdentityEventData{
		ID: "usr_evt",
		EmailAddresses: []struct {
			EmailAddress string `json:"email_address"`
		}{{EmailAddress: "evt@example.com"}},
		FirstName: "Eve",
		LastName:  "Nt",
	}

	t.Run("User Created Mirrors Candidate", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := services.NewIdentityService(userRepo, nil)

		userRepo.On("GetByExternalID", mock.Anything, "usr_evt").Return(nil, storage.ErrNotFound).Once()
		userRepo.On("Create", mock.Anything, mock.MatchedBy(func(identity *dto.Identity) bool {
			return identity.ExternalID == "usr_evt" &&
				identity.Email == "evt@example.com" &&
				identity.Name == "Eve Nt"
		}), models.RoleCandidate).Return(&models.User{ID: uuid.New(), Role: models.RoleCandidate}, nil).Once()

		err := svc.HandleProviderEvent(context.Background(), "msg_1", dto.EventUserCreated, data)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("User Updated Refreshes Mirror", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := services.NewIdentityService(userRepo, nil)

		userRepo.On("UpdateProviderFields", mock.Anything, "usr_evt", "evt@example.com", "Eve Nt").Return(&models.User{
			ID: uuid.New(),
		}, nil).Once()

		err := svc.HandleProviderEvent(context.Background(), "msg_2", dto.EventUserUpdated, data)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("User Deleted Removes Mirror", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := services.NewIdentityService(userRepo, nil)

		userRepo.On("DeleteByExternalID", mock.Anything, "usr_evt").Return(nil).Once()

		err := svc.HandleProviderEvent(context.Background(), "msg_3", dto.EventUserDeleted, data)

		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Unknown Event Type Is Ignored", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := services.NewIdentityService(userRepo, nil)

		err := svc.HandleProviderEvent(context.Background(), "msg_4", "session.created", data)

		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}
