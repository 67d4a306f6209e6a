package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceSelect = `
	SELECT e.id, e.applicant_id, u.name, e.company_name, e.job_title,
	       to_char(e.start_date, 'YYYY-MM-DD'), to_char(e.end_date, 'YYYY-MM-DD'),
	       e.description, e.skills
	FROM experiences e
	JOIN applicants a ON a.id = e.applicant_id
	JOIN users u ON u.id = a.user_id`

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	err := row.Scan(&e.ID, &e.ApplicantID, &e.ApplicantName, &e.CompanyName, &e.JobTitle,
		&e.StartDate, &e.EndDate, &e.Description, &e.Skills)
	if err != nil {
		return nil, notFound(err)
	}
	return &e, nil
}

func (r *experienceRepo) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (applicant_id, company_name, job_title, start_date, end_date, description, skills)
              VALUES ($1, $2, $3, $4::date, $5::date, $6, $7) RETURNING id`
	return r.db.QueryRow(ctx, query,
		e.ApplicantID, e.CompanyName, e.JobTitle, e.StartDate, e.EndDate, e.Description, e.Skills,
	).Scan(&e.ID)
}

func (r *experienceRepo) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	return scanExperience(r.db.QueryRow(ctx, experienceSelect+` WHERE e.id = $1`, id))
}

func (r *experienceRepo) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.Experience, error) {
	rows, err := r.db.Query(ctx, experienceSelect+` WHERE e.applicant_id = $1 ORDER BY e.start_date DESC, e.id`, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []domain.Experience{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *e)
	}
	return experiences, rows.Err()
}

func (r *experienceRepo) Update(ctx context.Context, e *domain.Experience) error {
	query := `UPDATE experiences SET company_name = $2, job_title = $3, start_date = $4::date,
              end_date = $5::date, description = $6, skills = $7 WHERE id = $1`
	return requireAffected(r.db.Exec(ctx, query,
		e.ID, e.CompanyName, e.JobTitle, e.StartDate, e.EndDate, e.Description, e.Skills))
}

func (r *experienceRepo) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id))
}
