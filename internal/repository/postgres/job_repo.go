package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.company_id, j.title, j.description, j.location, j.application_url,
	j.salary::text, j.skills, j.status, j.job_type, j.created_at`

const jobWithCompanySelect = `
	SELECT ` + jobColumns + `, c.name, c.logo, c.website
	FROM jobs j
	JOIN companies c ON c.id = j.company_id`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Location, &job.ApplicationURL,
		&job.Salary, &job.Skills, &job.Status, &job.JobType, &job.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

func scanJobWithCompany(row pgx.Row) (*domain.JobWithCompany, error) {
	var job domain.JobWithCompany
	err := row.Scan(
		&job.ID, &job.CompanyID, &job.Title, &job.Description, &job.Location, &job.ApplicationURL,
		&job.Salary, &job.Skills, &job.Status, &job.JobType, &job.CreatedAt,
		&job.CompanyName, &job.CompanyLogo, &job.CompanyWebsite,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &job, nil
}

// Create inserts the job and queues it for indexing in the same transaction.
func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `INSERT INTO jobs (company_id, title, description, location, application_url, salary, skills, status, job_type)
                  VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9) RETURNING id, salary::text, created_at`
		err := tx.QueryRow(ctx, query,
			job.CompanyID, job.Title, job.Description, job.Location, job.ApplicationURL,
			job.Salary, job.Skills, job.Status, job.JobType,
		).Scan(&job.ID, &job.Salary, &job.CreatedAt)
		if err != nil {
			return err
		}
		return enqueueSync(ctx, tx, job.ID, domain.SyncActionIndex)
	})
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	return scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, id))
}

// GetByIDWithCompany retrieves a job with company profile details
func (r *jobRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobWithCompany, error) {
	return scanJobWithCompany(r.db.QueryRow(ctx, jobWithCompanySelect+` WHERE j.id = $1`, id))
}

func (r *jobRepo) GetManyWithCompany(ctx context.Context, ids []int64) ([]domain.JobWithCompany, error) {
	jobs := []domain.JobWithCompany{}
	if len(ids) == 0 {
		return jobs, nil
	}
	rows, err := r.db.Query(ctx, jobWithCompanySelect+` WHERE j.id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		job, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// FetchWithCompany lists jobs newest first with company profile data
func (r *jobRepo) FetchWithCompany(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	limit, offset = pageArgs(limit, offset)
	rows, err := r.db.Query(ctx, jobWithCompanySelect+` ORDER BY j.created_at DESC, j.id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.JobWithCompany{}
	for rows.Next() {
		job, err := scanJobWithCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	limit, offset = pageArgs(limit, offset)
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.company_id = $1
              ORDER BY j.created_at DESC, j.id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM jobs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

// Update overwrites the job and queues a reindex in the same transaction.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `UPDATE jobs SET title = $2, description = $3, location = $4, application_url = $5,
                  salary = $6::numeric, skills = $7, status = $8, job_type = $9
                  WHERE id = $1 RETURNING salary::text`
		err := tx.QueryRow(ctx, query,
			job.ID, job.Title, job.Description, job.Location, job.ApplicationURL,
			job.Salary, job.Skills, job.Status, job.JobType,
		).Scan(&job.Salary)
		if err != nil {
			return notFound(err)
		}
		return enqueueSync(ctx, tx, job.ID, domain.SyncActionIndex)
	})
}

// Delete removes the job and queues removal of its index document.
func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := requireAffected(tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)); err != nil {
			return err
		}
		return enqueueSync(ctx, tx, id, domain.SyncActionDelete)
	})
}
