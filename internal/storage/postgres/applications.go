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

// ApplicationRepo implements the storage.ApplicationRepository interface using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

const applicationColumns = `id, job_id, candidate_id, cover_letter, status, created_at`

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application with status pending. The unique index on
// (job_id, candidate_id) is the concurrency backstop for duplicate submissions.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.ApplyToJobRequest) (*models.Application, error) {
	query := `
		INSERT INTO applications (id, job_id, candidate_id, cover_letter, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING ` + applicationColumns

	app, err := scanApplication(r.db.QueryRow(ctx, query,
		uuid.New(), req.JobID, req.CandidateID, req.CoverLetter, models.ApplicationStatusPending))
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, storage.ErrConflict
		}
		log.Printf("Error creating application for job %s by candidate %s: %v", req.JobID, req.CandidateID, err)
		return nil, err
	}
	return app, nil
}

// GetByID retrieves a single application by ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting application %s: %v", id, err)
		return nil, err
	}
	return app, nil
}

// GetByJobAndCandidate retrieves the application a candidate made to a job, if any.
func (r *ApplicationRepo) GetByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*models.Application, error) {
	app, err := scanApplication(r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND candidate_id = $2`, jobID, candidateID))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting application for job %s by candidate %s: %v", jobID, candidateID, err)
		return nil, err
	}
	return app, nil
}

// ListByJob retrieves all applications to a job, newest first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 ORDER BY created_at DESC`, jobID)
	if err != nil {
		log.Printf("Error listing applications for job %s: %v", jobID, err)
		return nil, err
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		var a models.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// ListByCandidate retrieves a candidate's applications joined with job display
// fields, newest first.
func (r *ApplicationRepo) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]models.ApplicationWithJob, error) {
	query := `
		SELECT a.id, a.job_id, a.candidate_id, a.cover_letter, a.status, a.created_at, j.title, j.company
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.candidate_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, candidateID)
	if err != nil {
		log.Printf("Error listing applications for candidate %s: %v", candidateID, err)
		return nil, err
	}
	defer rows.Close()

	apps := []models.ApplicationWithJob{}
	for rows.Next() {
		var a models.ApplicationWithJob
		if err := rows.Scan(&a.ID, &a.JobID, &a.CandidateID, &a.CoverLetter, &a.Status, &a.CreatedAt,
			&a.JobTitle, &a.JobCompany); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateStatus records an admin review decision. Any status is reachable from any status.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := `UPDATE applications SET status = $2 WHERE id = $1 RETURNING ` + applicationColumns
	app, err := scanApplication(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status for application %s: %v", id, err)
		return nil, err
	}
	return app, nil
}
