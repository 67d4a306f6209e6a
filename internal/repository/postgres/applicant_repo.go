package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type applicantRepo struct {
	db *pgxpool.Pool
}

func NewApplicantRepository(db *pgxpool.Pool) domain.ApplicantRepository {
	return &applicantRepo{db: db}
}

const applicantSelect = `
	SELECT a.id, a.user_id, u.name, u.email, a.linkedin, a.github, a.resume, a.skills
	FROM applicants a
	JOIN users u ON u.id = a.user_id`

func scanApplicant(row pgx.Row) (*domain.Applicant, error) {
	var a domain.Applicant
	err := row.Scan(&a.ID, &a.UserID, &a.Name, &a.Email, &a.LinkedIn, &a.GitHub, &a.Resume, &a.Skills)
	if err != nil {
		return nil, notFound(err)
	}
	return &a, nil
}

func (r *applicantRepo) GetByID(ctx context.Context, id int64) (*domain.Applicant, error) {
	return scanApplicant(r.db.QueryRow(ctx, applicantSelect+` WHERE a.id = $1`, id))
}

func (r *applicantRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Applicant, error) {
	return scanApplicant(r.db.QueryRow(ctx, applicantSelect+` WHERE a.user_id = $1`, userID))
}

func (r *applicantRepo) List(ctx context.Context, limit, offset int) ([]domain.Applicant, int64, error) {
	limit, offset = pageArgs(limit, offset)
	rows, err := r.db.Query(ctx, applicantSelect+` ORDER BY a.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	applicants := []domain.Applicant{}
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, 0, err
		}
		applicants = append(applicants, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applicants`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return applicants, total, nil
}

func (r *applicantRepo) Update(ctx context.Context, a *domain.Applicant) error {
	query := `UPDATE applicants SET linkedin = $2, github = $3, resume = $4, skills = $5 WHERE id = $1`
	return requireAffected(r.db.Exec(ctx, query, a.ID, a.LinkedIn, a.GitHub, a.Resume, a.Skills))
}

// Delete removes the applicant together with its owning user; the profile
// goes with it through ON DELETE CASCADE.
func (r *applicantRepo) Delete(ctx context.Context, id int64) error {
	return requireAffected(r.db.Exec(ctx,
		`DELETE FROM users WHERE id = (SELECT user_id FROM applicants WHERE id = $1)`, id))
}
