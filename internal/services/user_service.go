package services

import (
	"context"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
)

type userService struct {
	userRepo storage.UserRepository
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo storage.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing users")
	}
	return users, nil
}

func (s *userService) UpdateRole(ctx context.Context, req *dto.UpdateUserRoleRequest) (*models.User, error) {
	user, err := s.userRepo.UpdateRole(ctx, req.ID, models.Role(req.Role))
	if err != nil {
		return nil, mapRepoError(err, "updating user role")
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, "deleting user")
	}
	return nil
}
