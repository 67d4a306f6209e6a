package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationSelect = `
	SELECT ja.id, ja.applicant_id, u.name, ja.job_id, ja.company_name, ja.job_title,
	       ja.job_url, ja.status, ja.applied_at
	FROM job_applications ja
	JOIN applicants a ON a.id = ja.applicant_id
	JOIN users u ON u.id = a.user_id`

func scanApplication(row pgx.Row) (*domain.JobApplication, error) {
	var app domain.JobApplication
	err := row.Scan(&app.ID, &app.ApplicantID, &app.ApplicantName, &app.JobID, &app.CompanyName,
		&app.JobTitle, &app.JobURL, &app.Status, &app.AppliedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &app, nil
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `INSERT INTO job_applications (applicant_id, job_id, company_name, job_title, job_url, status)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, applied_at`
	return r.db.QueryRow(ctx, query,
		app.ApplicantID, app.JobID, app.CompanyName, app.JobTitle, app.JobURL, app.Status,
	).Scan(&app.ID, &app.AppliedAt)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.JobApplication, error) {
	return scanApplication(r.db.QueryRow(ctx, applicationSelect+` WHERE ja.id = $1`, id))
}

func (r *applicationRepo) List(ctx context.Context, limit, offset int) ([]domain.JobApplication, int64, error) {
	limit, offset = pageArgs(limit, offset)
	rows, err := r.db.Query(ctx, applicationSelect+` ORDER BY ja.applied_at DESC, ja.id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	apps, err := collectApplications(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_applications`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepo) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.JobApplication, error) {
	rows, err := r.db.Query(ctx, applicationSelect+` WHERE ja.applicant_id = $1 ORDER BY ja.applied_at DESC, ja.id DESC`, applicantID)
	if err != nil {
		return nil, err
	}
	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]domain.JobApplication, error) {
	defer rows.Close()
	apps := []domain.JobApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) Update(ctx context.Context, app *domain.JobApplication) error {
	query := `UPDATE job_applications SET company_name = $2, job_title = $3, job_url = $4, status = $5 WHERE id = $1`
	return requireAffected(r.db.Exec(ctx, query, app.ID, app.CompanyName, app.JobTitle, app.JobURL, app.Status))
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.db.Exec(ctx, `DELETE FROM job_applications WHERE id = $1`, id))
}
