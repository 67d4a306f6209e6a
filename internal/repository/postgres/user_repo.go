package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password_hash, role, name, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func insertUser(ctx context.Context, tx pgx.Tx, u *domain.User) error {
	query := `INSERT INTO users (email, password_hash, role, name)
              VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	err := tx.QueryRow(ctx, query, u.Email, u.PasswordHash, u.Role, u.Name).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *userRepo) CreateWithApplicant(ctx context.Context, u *domain.User, a *domain.Applicant) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertUser(ctx, tx, u); err != nil {
			return err
		}
		a.UserID = u.ID
		query := `INSERT INTO applicants (user_id, linkedin, github, resume, skills)
                  VALUES ($1, $2, $3, $4, $5) RETURNING id`
		return tx.QueryRow(ctx, query, a.UserID, a.LinkedIn, a.GitHub, a.Resume, a.Skills).Scan(&a.ID)
	})
}

func (r *userRepo) CreateWithCompany(ctx context.Context, u *domain.User, c *domain.Company) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := insertUser(ctx, tx, u); err != nil {
			return err
		}
		c.UserID = u.ID
		query := `INSERT INTO companies (user_id, name, industry, logo, brief, website)
                  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
		return tx.QueryRow(ctx, query, c.UserID, c.Name, c.Industry, c.Logo, c.Brief, c.Website).Scan(&c.ID)
	})
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *userRepo) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	limit, offset = pageArgs(limit, offset)
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepo) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email = $2, password_hash = $3, name = $4, updated_at = NOW()
              WHERE id = $1 RETURNING updated_at`
	err := r.db.QueryRow(ctx, query, u.ID, u.Email, u.PasswordHash, u.Name).Scan(&u.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return notFound(err)
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		filter := `company_id IN (SELECT id FROM companies WHERE user_id = $1)`
		if err := enqueueDeletesForJobs(ctx, tx, filter, id); err != nil {
			return err
		}
		return requireAffected(tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id))
	})
}
