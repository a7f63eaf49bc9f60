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

// SavedJobRepo implements the storage.SavedJobRepository interface using PostgreSQL.
type SavedJobRepo struct {
	db Querier
}

// NewSavedJobRepo creates a new SavedJobRepo.
func NewSavedJobRepo(db *pgxpool.Pool) *SavedJobRepo {
	return &SavedJobRepo{db: db}
}

// Compile-time check to ensure SavedJobRepo implements SavedJobRepository
var _ storage.SavedJobRepository = (*SavedJobRepo)(nil)

const savedJobColumns = `id, candidate_id, job_id, created_at`

func scanSavedJob(row pgx.Row) (*models.SavedJob, error) {
	var s models.SavedJob
	err := row.Scan(&s.ID, &s.CandidateID, &s.JobID, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a bookmark. The unique index on (candidate_id, job_id)
// prevents duplicate bookmarks of the same job.
func (r *SavedJobRepo) Create(ctx context.Context, candidateID, jobID uuid.UUID) (*models.SavedJob, error) {
	query := `
		INSERT INTO saved_jobs (id, candidate_id, job_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + savedJobColumns

	saved, err := scanSavedJob(r.db.QueryRow(ctx, query, uuid.New(), candidateID, jobID))
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, storage.ErrConflict
		}
		log.Printf("Error saving job %s for candidate %s: %v", jobID, candidateID, err)
		return nil, err
	}
	return saved, nil
}

// GetByID retrieves a single bookmark by ID.
func (r *SavedJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SavedJob, error) {
	saved, err := scanSavedJob(r.db.QueryRow(ctx, `SELECT `+savedJobColumns+` FROM saved_jobs WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting saved job %s: %v", id, err)
		return nil, err
	}
	return saved, nil
}

// ListByCandidate retrieves a candidate's bookmarks joined with job display
// fields, newest first.
func (r *SavedJobRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.SavedJobWithJob, error) {
	query := `
		SELECT s.id, s.candidate_id, s.job_id, s.created_at, j.title, j.company, j.status
		FROM saved_jobs s
		JOIN jobs j ON j.id = s.job_id
		WHERE s.candidate_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		log.Printf("Error listing saved jobs for candidate %s: %v", candidateID, err)
		return nil, err
	}
	defer rows.Close()

	saved := []models.SavedJobWithJob{}
	for rows.Next() {
		var s models.SavedJobWithJob
		if err := rows.Scan(&s.ID, &s.CandidateID, &s.JobID, &s.CreatedAt,
			&s.JobTitle, &s.JobCompany, &s.JobStatus); err != nil {
			return nil, err
		}
		saved = append(saved, s)
	}
	return saved, rows.Err()
}

// Delete removes a bookmark by ID. Ownership is checked at the service layer.
func (r *SavedJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting saved job %s: %v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
