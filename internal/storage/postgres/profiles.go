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

// ProfileRepo implements the storage.ProfileRepository interface using PostgreSQL.
type ProfileRepo struct {
	db Querier
}

// NewProfileRepo creates a new ProfileRepo.
func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Compile-time check to ensure ProfileRepo implements ProfileRepository
var _ storage.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `id, user_id, name, age, occupation, experience_band, location, bio, resume_file_name, resume_file_url, created_at, updated_at`

func scanProfile(row pgx.Row) (*models.CandidateProfile, error) {
	var p models.CandidateProfile
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Age, &p.Occupation, &p.ExperienceBand,
		&p.Location, &p.Bio, &p.ResumeFileName, &p.ResumeFileURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByUserID retrieves the profile owned by a user, if any.
func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.CandidateProfile, error) {
	profile, err := scanProfile(r.db.QueryRow(ctx, `SELECT `+profileColumns+` FROM candidate_profiles WHERE user_id = $1`, userID))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting profile for user %s: %v", userID, err)
		return nil, err
	}
	return profile, nil
}

// Create inserts a new profile. The unique index on user_id enforces at most
// one profile per user.
func (r *ProfileRepo) Create(ctx context.Context, profile *models.CandidateProfile) (*models.CandidateProfile, error) {
	query := `
		INSERT INTO candidate_profiles (id, user_id, name, age, occupation, experience_band, location, bio, resume_file_name, resume_file_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + profileColumns

	created, err := scanProfile(r.db.QueryRow(ctx, query,
		uuid.New(), profile.UserID, profile.Name, profile.Age, profile.Occupation,
		profile.ExperienceBand, profile.Location, profile.Bio, profile.ResumeFileName, profile.ResumeFileURL))
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating profile for user %s: %v", profile.UserID, err)
		return nil, err
	}
	return created, nil
}

// Update replaces the mutable fields of an existing profile.
func (r *ProfileRepo) Update(ctx context.Context, profile *models.CandidateProfile) (*models.CandidateProfile, error) {
	query := `
		UPDATE candidate_profiles
		SET name = $2, age = $3, occupation = $4, experience_band = $5, location = $6,
		    bio = $7, resume_file_name = $8, resume_file_url = $9, updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + profileColumns

	updated, err := scanProfile(r.db.QueryRow(ctx, query,
		profile.UserID, profile.Name, profile.Age, profile.Occupation, profile.ExperienceBand,
		profile.Location, profile.Bio, profile.ResumeFileName, profile.ResumeFileURL))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating profile for user %s: %v", profile.UserID, err)
		return nil, err
	}
	return updated, nil
}
