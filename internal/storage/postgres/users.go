package postgres

import (
	"context"
	"log"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

// WithTx creates a new UserRepo bound to the transaction.
func (r *UserRepo) WithTx(tx pgx.Tx) storage.UserRepository {
	return &UserRepo{db: tx}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

const userColumns = `id, external_id, email, name, role, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAll retrieves all users, newest first.
func (r *UserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		log.Printf("Error querying all users: %v", err)
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.ExternalID, &u.Email, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by ID %s: %v", id, err)
		return nil, err
	}
	return user, nil
}

// GetByExternalID retrieves a single user by the identity provider's user id.
func (r *UserRepo) GetByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE external_id = $1`, externalID))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by external ID %s: %v", externalID, err)
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a single user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting user by email %s: %v", email, err)
		return nil, err
	}
	return user, nil
}

// Create inserts a new user mirrored from a provider identity.
func (r *UserRepo) Create(ctx context.Context, identity *dto.Identity, role models.Role) (*models.User, error) {
	query := `
		INSERT INTO users (id, external_id, email, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, uuid.New(), identity.ExternalID, identity.Email, identity.Name, role))
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return nil, storage.ErrDuplicateEmail
		}
		if isUniqueViolation(err, "") {
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating user for external ID %s: %v", identity.ExternalID, err)
		return nil, err
	}

	log.Printf("User created with ID %s for external ID %s", user.ID, user.ExternalID)
	return user, nil
}

// UpdateProviderFields refreshes the email/name mirror for a provider identity.
func (r *UserRepo) UpdateProviderFields(ctx context.Context, externalID, email, name string) (*models.User, error) {
	query := `
		UPDATE users SET email = $2, name = $3, updated_at = NOW()
		WHERE external_id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, externalID, email, name))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		if isUniqueViolation(err, "users_email_key") {
			return nil, storage.ErrDuplicateEmail
		}
		log.Printf("Error updating provider fields for external ID %s: %v", externalID, err)
		return nil, err
	}
	return user, nil
}

// UpdateRole changes a user's role.
func (r *UserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	query := `
		UPDATE users SET role = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, id, role))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating role for user %s: %v", id, err)
		return nil, err
	}
	return user, nil
}

// Delete removes a user by ID.
func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting user %s: %v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteByExternalID removes the mirror row for a provider identity.
// Used by the user.deleted webhook; a missing row is not an error there.
func (r *UserRepo) DeleteByExternalID(ctx context.Context, externalID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE external_id = $1`, externalID)
	if err != nil {
		log.Printf("Error deleting user by external ID %s: %v", externalID, err)
	}
	return err
}
