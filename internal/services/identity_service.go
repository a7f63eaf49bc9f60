package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/redis/go-redis/v9"
)

// How long processed webhook message ids are remembered for replay protection.
const webhookDedupeTTL = 24 * time.Hour

type identityService struct {
	userRepo storage.UserRepository
	redis    *redis.Client
}

// NewIdentityService creates a new instance of IdentityService. The redis
// client is used only for webhook replay protection and may be nil in tests.
func NewIdentityService(userRepo storage.UserRepository, redisClient *redis.Client) IdentityService {
	return &identityService{userRepo: userRepo, redis: redisClient}
}

// EnsureUser looks up the local user by the provider's user id, creating it
// with role=candidate on first sighting and refreshing email/name when the
// provider data changed. Any store failure propagates so callers fail closed.
func (s *identityService) EnsureUser(ctx context.Context, identity *dto.Identity) (*models.User, error) {
	user, err := s.userRepo.GetByExternalID(ctx, identity.ExternalID)
	if err == nil {
		if user.Email != identity.Email || (identity.Name != "" && user.Name != identity.Name) {
			name := identity.Name
			if name == "" {
				name = user.Name
			}
			refreshed, err := s.userRepo.UpdateProviderFields(ctx, identity.ExternalID, identity.Email, name)
			if err != nil {
				// The stale mirror is still a valid user; don't fail the request.
				log.Printf("IdentityService: Error refreshing provider fields for %s: %v", identity.ExternalID, err)
				return user, nil
			}
			return refreshed, nil
		}
		return user, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("IdentityService: Error looking up external ID %s: %v", identity.ExternalID, err)
		return nil, fmt.Errorf("internal error resolving identity: %w", err)
	}

	created, err := s.userRepo.Create(ctx, identity, models.RoleCandidate)
	if err != nil {
		// A concurrent first sighting may have inserted the row between our
		// lookup and insert; the unique index resolves the race.
		if errors.Is(err, storage.ErrConflict) || errors.Is(err, storage.ErrDuplicateEmail) {
			existing, lookupErr := s.userRepo.GetByExternalID(ctx, identity.ExternalID)
			if lookupErr == nil {
				return existing, nil
			}
		}
		log.Printf("IdentityService: Error creating user for external ID %s: %v", identity.ExternalID, err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return created, nil
}

// HandleProviderEvent mirrors a verified provider webhook event. The svix
// message id is SETNX'd in redis so redelivered events are applied once.
func (s *identityService) HandleProviderEvent(ctx context.Context, messageID, eventType string, data *dto.IdentityEventData) error {
	if s.redis != nil && messageID != "" {
		fresh, err := s.redis.SetNX(ctx, "webhook:"+messageID, 1, webhookDedupeTTL).Result()
		if err != nil {
			// Losing the dedupe guard is survivable; every handler below is idempotent.
			log.Printf("IdentityService: Error recording webhook message id %s: %v", messageID, err)
		} else if !fresh {
			log.Printf("IdentityService: Dropping replayed webhook message %s", messageID)
			return nil
		}
	}

	switch eventType {
	case dto.EventUserCreated:
		identity := &dto.Identity{ExternalID: data.ID, Email: data.PrimaryEmail(), Name: data.FullName()}
		_, err := s.EnsureUser(ctx, identity)
		return err
	case dto.EventUserUpdated:
		_, err := s.userRepo.UpdateProviderFields(ctx, data.ID, data.PrimaryEmail(), data.FullName())
		if errors.Is(err, storage.ErrNotFound) {
			// Update for a user we never mirrored; treat as a first sighting.
			identity := &dto.Identity{ExternalID: data.ID, Email: data.PrimaryEmail(), Name: data.FullName()}
			_, err = s.EnsureUser(ctx, identity)
		}
		return err
	case dto.EventUserDeleted:
		return s.userRepo.DeleteByExternalID(ctx, data.ID)
	default:
		log.Printf("IdentityService: Ignoring unhandled provider event type %q", eventType)
		return nil
	}
}
