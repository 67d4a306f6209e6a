package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, user_id, name, industry, logo, brief, website`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Industry, &c.Logo, &c.Brief, &c.Website); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
}

func (r *companyRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	return scanCompany(r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE user_id = $1`, userID))
}

func (r *companyRepo) List(ctx context.Context, limit, offset int) ([]domain.Company, int64, error) {
	limit, offset = pageArgs(limit, offset)
	rows, err := r.db.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return companies, total, nil
}

func (r *companyRepo) Update(ctx context.Context, c *domain.Company) error {
	query := `UPDATE companies SET name = $2, industry = $3, logo = $4, brief = $5, website = $6 WHERE id = $1`
	return requireAffected(r.db.Exec(ctx, query, c.ID, c.Name, c.Industry, c.Logo, c.Brief, c.Website))
}

// Delete removes the company with its owning user and schedules index deletes
// for its jobs.
func (r *companyRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := enqueueDeletesForJobs(ctx, tx, `company_id = $1`, id); err != nil {
			return err
		}
		return requireAffected(tx.Exec(ctx,
			`DELETE FROM users WHERE id = (SELECT user_id FROM companies WHERE id = $1)`, id))
	})
}
