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

	"github.com/google/uuid"
)

// Invitations stop being redeemable this long after issuance.
const invitationTTL = 24 * time.Hour

type invitationService struct {
	invitationRepo storage.InvitationRepository
	userRepo       storage.UserRepository
	tx             TxBeginner
	baseURL        string
}

// NewInvitationService creates a new instance of InvitationService. baseURL is
// the public origin used to build redemption links.
func NewInvitationService(invitationRepo storage.InvitationRepository, userRepo storage.UserRepository, tx TxBeginner, baseURL string) InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		tx:             tx,
		baseURL:        baseURL,
	}
}

// Issue creates a pending invitation for the given email and returns it along
// with the redemption link. The link is the sole credential; no email is sent.
func (s *invitationService) Issue(ctx context.Context, req *dto.IssueInvitationRequest) (*models.AdminInvitation, string, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, "", mapRepoError(err, "checking invitation email")
	}
	if existing != nil {
		return nil, "", fmt.Errorf("%w: a user with this email already exists", ErrConflict)
	}

	inv := &models.AdminInvitation{
		Email:     req.Email,
		Token:     uuid.New(),
		CreatedBy: req.IssuerID,
		Status:    models.InvitationStatusPending,
		ExpiresAt: time.Now().Add(invitationTTL),
	}
	created, err := s.invitationRepo.Create(ctx, inv)
	if err != nil {
		return nil, "", mapRepoError(err, "creating invitation")
	}
	link := fmt.Sprintf("%s/admin/register?token=%s", s.baseURL, created.Token)
	return created, link, nil
}

// Redeem consumes a pending invitation token and promotes the registering
// identity to admin. The read, the expiry flip, the user upsert and the token
// consumption all happen in one transaction so a token is never honored twice.
func (s *invitationService) Redeem(ctx context.Context, req *dto.RedeemInvitationRequest, identity *dto.Identity) (*models.User, error) {
	token, err := uuid.Parse(req.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed invitation token", ErrValidation)
	}

	tx, err := s.tx.Begin(ctx)
	if err != nil {
		log.Printf("InvitationService: Error beginning redeem transaction: %v", err)
		return nil, fmt.Errorf("internal error redeeming invitation: %w", err)
	}
	defer tx.Rollback(ctx)

	invRepo := s.invitationRepo.WithTx(tx)
	userRepo := s.userRepo.WithTx(tx)

	inv, err := invRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, mapRepoError(err, "looking up invitation token")
	}
	if inv.Status != models.InvitationStatusPending {
		return nil, ErrInvitationExpired
	}
	if time.Now().After(inv.ExpiresAt) {
		// Expiry is enforced lazily at redemption time. The flip is committed
		// even though the redemption fails, so the row reads expired from now on.
		if err := invRepo.UpdateStatus(ctx, inv.ID, models.InvitationStatusExpired); err != nil {
			return nil, mapRepoError(err, "expiring invitation")
		}
		if err := tx.Commit(ctx); err != nil {
			log.Printf("InvitationService: Error committing invitation expiry: %v", err)
		}
		return nil, ErrInvitationExpired
	}

	user, err := userRepo.GetByExternalID(ctx, identity.ExternalID)
	switch {
	case err == nil:
		user, err = userRepo.UpdateRole(ctx, user.ID, models.RoleAdmin)
		if err != nil {
			return nil, mapRepoError(err, "promoting user to admin")
		}
	case errors.Is(err, storage.ErrNotFound):
		user, err = userRepo.Create(ctx, identity, models.RoleAdmin)
		if err != nil {
			return nil, mapRepoError(err, "creating admin user")
		}
	default:
		return nil, mapRepoError(err, "resolving redeeming identity")
	}

	if err := invRepo.UpdateStatus(ctx, inv.ID, models.InvitationStatusAccepted); err != nil {
		return nil, mapRepoError(err, "consuming invitation token")
	}
	if err := tx.Commit(ctx); err != nil {
		log.Printf("InvitationService: Error committing redeem transaction: %v", err)
		return nil, fmt.Errorf("internal error redeeming invitation: %w", err)
	}
	return user, nil
}

// Revoke marks a pending invitation expired. Revoking an invitation that is
// already accepted or expired is a no-op success.
func (s *invitationService) Revoke(ctx context.Context, req *dto.RevokeInvitationRequest) error {
	inv, err := s.invitationRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, "looking up invitation")
	}
	if inv.Status != models.InvitationStatusPending {
		return nil
	}
	if err := s.invitationRepo.UpdateStatus(ctx, inv.ID, models.InvitationStatusExpired); err != nil {
		return mapRepoError(err, "revoking invitation")
	}
	return nil
}

func (s *invitationService) List(ctx context.Context) ([]models.AdminInvitationWithCreator, error) {
	invitations, err := s.invitationRepo.ListWithCreator(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing invitations")
	}
	return invitations, nil
}
