package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OwnershipRepository answers "which user owns this record" for each resource kind.
type OwnershipRepository struct {
	db *pgxpool.Pool
}

func NewOwnershipRepository(db *pgxpool.Pool) *OwnershipRepository {
	return &OwnershipRepository{db: db}
}

func (r *OwnershipRepository) owner(ctx context.Context, query string, id int64) (int64, error) {
	var userID int64
	if err := r.db.QueryRow(ctx, query, id).Scan(&userID); err != nil {
		return 0, notFound(err)
	}
	return userID, nil
}

func (r *OwnershipRepository) UserOwner(ctx context.Context, id int64) (int64, error) {
	return r.owner(ctx, `SELECT id FROM users WHERE id = $1`, id)
}

func (r *OwnershipRepository) ApplicantOwner(ctx context.Context, id int64) (int64, error) {
	return r.owner(ctx, `SELECT user_id FROM applicants WHERE id = $1`, id)
}

func (r *OwnershipRepository) CompanyOwner(ctx context.Context, id int64) (int64, error) {
	return r.owner(ctx, `SELECT user_id FROM companies WHERE id = $1`, id)
}

func (r *OwnershipRepository) JobOwner(ctx context.Context, id int64) (int64, error) {
	return r.owner(ctx, `
		SELECT c.user_id FROM jobs j JOIN companies c ON c.id = j.company_id WHERE j.id = $1`, id)
}

func (r *OwnershipRepository) ExperienceOwner(ctx context.Context, id int64) (int64, error) {
	return r.owner(ctx, `
		SELECT a.user_id FROM experiences e JOIN applicants a ON a.id = e.applicant_id WHERE e.id = $1`, id)
}

func (r *OwnershipRepository) ApplicationOwner(ctx context.Context, id int64) (int64, error) {
	return r.owner(ctx, `
		SELECT a.user_id FROM job_applications ja JOIN applicants a ON a.id = ja.applicant_id WHERE ja.id = $1`, id)
}
