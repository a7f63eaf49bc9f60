package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"

	"job-portal-api/internal/models"
	"job-portal-api/internal/storage"
	"job-portal-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern escapes ILIKE metacharacters so the search term
// matches as a literal substring.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

const jobColumns = `id, title, company, location, type, salary, description, requirements, responsibilities, status, posted_by, created_at, updated_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Salary,
		&j.Description, &j.Requirements, &j.Responsibilities, &j.Status, &j.PostedBy,
		&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create saves a new job posting with status active.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs (id, title, company, location, type, salary, description, requirements, responsibilities, status, posted_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING ` + jobColumns

	job, err := scanJob(r.db.QueryRow(ctx, query,
		uuid.New(), req.Title, req.Company, req.Location, req.Type, req.Salary,
		req.Description, req.Requirements, req.Responsibilities, models.JobStatusActive, req.PostedBy))
	if err != nil {
		log.Printf("Error creating job %q: %v", req.Title, err)
		return nil, err
	}
	return job, nil
}

// GetByID retrieves a single job by ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error getting job %s: %v", id, err)
		return nil, err
	}
	return job, nil
}

// List retrieves jobs matching the filter. The query term matches
// title/company/location/type case-insensitively; status defaults to active.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	conditions := []string{}
	args := []interface{}{}

	status := req.Status
	if status == "" {
		status = string(models.JobStatusActive)
	}
	args = append(args, status)
	conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))

	if req.Query != "" {
		args = append(args, "%"+escapeLikePattern(req.Query)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR company ILIKE $%d OR location ILIKE $%d OR type ILIKE $%d)", n, n, n, n))
	}

	order := "DESC"
	if req.Sort == "asc" {
		order = "ASC"
	}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + jobColumns + ` FROM jobs`)
	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at " + order)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		return nil, err
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Salary,
			&j.Description, &j.Requirements, &j.Responsibilities, &j.Status, &j.PostedBy,
			&j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Update edits a job posting. Only non-nil fields change.
func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*models.Job, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Company != nil {
		addSet("company", *req.Company)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.Type != nil {
		addSet("type", *req.Type)
	}
	if req.Salary != nil {
		addSet("salary", *req.Salary)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Requirements != nil {
		addSet("requirements", *req.Requirements)
	}
	if req.Responsibilities != nil {
		addSet("responsibilities", *req.Responsibilities)
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $1 RETURNING %s`, strings.Join(sets, ", "), jobColumns)
	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v", req.ID, err)
		return nil, err
	}
	return job, nil
}

// UpdateStatus transitions a job's status. Jobs are never hard-deleted.
func (r *JobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*models.Job, error) {
	query := `UPDATE jobs SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + jobColumns
	job, err := scanJob(r.db.QueryRow(ctx, query, id, status))
	if err != nil {
		if isNoRows(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating status for job %s: %v", id, err)
		return nil, err
	}
	return job, nil
}
