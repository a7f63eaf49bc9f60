package postgres

import (
	"context"
	"log"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InvitationRepo implements the storage.InvitationRepository interface using PostgreSQL.
type InvitationRepo struct {
	db Querier
}

// NewInvitationRepo creates a new InvitationRepo.
func NewInvitationRepo(db *pgxpool.Pool) *InvitationRepo {
	return &InvitationRepo{db: db}
}

// WithTx creates a new InvitationRepo bound to the transaction.
func (r *InvitationRepo) WithTx(tx pgx.Tx) storage.InvitationRepository {
	return &InvitationRepo{db: tx}
}

// Compile-time check to ensure InvitationRepo implements InvitationRepository
var _ storage.InvitationRepository = (*InvitationRepo)(nil)

const invitationColumns = `id, email, token, created_by, status, created_at, expires_at`

func scanInvitation(row pgx.Row) (*models.AdminInvitation, error) {
	var inv models.AdminInvitation
	err := row.Scan(&inv.ID, &inv.Email, &inv.Token, &inv.CreatedBy, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create inserts a new invitation. The unique index on token guarantees a token
// value is never reused, regardless of invitation status.
func (r *InvitationRepo) Create(ctx context.Context, inv *models.AdminInvitation) (*models.AdminInvitation, error) {
	query := `
		INSERT INTO admin_invitations (id, email, token, created_by, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		RETURNING ` + invitationColumns

	created, err := scanInvitation(r.db.QueryRow(ctx, query,
		uuid.New(), inv.Email, inv.Token, inv.CreatedBy, inv.Status, inv.ExpiresAt))
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating invitation for %s: %v", inv.Email, err)
		return nil, err
	}
	return created, nil
}

// GetByID retrieves a single invitation by ID.
func (r *InvitationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminInvitation, error) {
	inv, err := scanInvitation(r.db.QueryRow(ctx, `SELECT `+invitationColumns+` FROM admin_invitations WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting invitation %s: %v", id, err)
		return nil, err
	}
	return inv, nil
}

// GetByToken retrieves a single invitation by its token.
func (r *InvitationRepo) GetByToken(ctx context.Context, token uuid.UUID) (*models.AdminInvitation, error) {
	inv, err := scanInvitation(r.db.QueryRow(ctx, `SELECT `+invitationColumns+` FROM admin_invitations WHERE token = $1`, token))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting invitation by token: %v", err)
		return nil, err
	}
	return inv, nil
}

// ListWithCreator retrieves all invitations newest first, each joined with the
// issuing admin's name and email for display.
func (r *InvitationRepo) ListWithCreator(ctx context.Context) ([]models.AdminInvitationWithCreator, error) {
	query := `
		SELECT i.id, i.email, i.token, i.created_by, i.status, i.created_at, i.expires_at, u.name, u.email
		FROM admin_invitations i
		JOIN users u ON u.id = i.created_by
		ORDER BY i.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error listing invitations: %v", err)
		return nil, err
	}
	defer rows.Close()

	invitations := []models.AdminInvitationWithCreator{}
	for rows.Next() {
		var inv models.AdminInvitationWithCreator
		if err := rows.Scan(&inv.ID, &inv.Email, &inv.Token, &inv.CreatedBy, &inv.Status,
			&inv.CreatedAt, &inv.ExpiresAt, &inv.CreatorName, &inv.CreatorEmail); err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

// UpdateStatus transitions an invitation's status. Expiry and revocation are
// status flips, never row removals, so the audit trail survives.
func (r *InvitationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.InvitationStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE admin_invitations SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		log.Printf("Error updating status for invitation %s: %v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
