package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

type syncTaskRepo struct {
	db *pgxpool.Pool
}

func NewSyncTaskRepository(db *pgxpool.Pool) domain.SyncTaskRepository {
	return &syncTaskRepo{db: db}
}

func (r *syncTaskRepo) Enqueue(ctx context.Context, jobID int64, action domain.SyncAction) error {
	return enqueueSync(ctx, r.db, jobID, action)
}

func (r *syncTaskRepo) EnqueueIfAbsent(ctx context.Context, jobID int64, action domain.SyncAction) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO search_sync_tasks (job_id, action) VALUES ($1, $2)
		ON CONFLICT (job_id, action) DO NOTHING`,
		jobID, string(action))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ClaimDue leases due tasks. Concurrent claimers skip rows another claimer holds.
func (r *syncTaskRepo) ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]domain.SyncTask, error) {
	rows, err := r.db.Query(ctx, `
		UPDATE search_sync_tasks t
		SET available_at = NOW() + make_interval(secs => $2)
		FROM (
			SELECT id FROM search_sync_tasks
			WHERE available_at <= NOW()
			ORDER BY available_at, id
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		) due
		WHERE t.id = due.id
		RETURNING t.id, t.job_id, t.action, t.revision, t.attempts, t.last_error, t.available_at, t.created_at`,
		limit, lease.Seconds())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.SyncTask{}
	for rows.Next() {
		var t domain.SyncTask
		var action string
		if err := rows.Scan(&t.ID, &t.JobID, &action, &t.Revision, &t.Attempts, &t.LastError, &t.AvailableAt, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Action = domain.SyncAction(action)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *syncTaskRepo) Complete(ctx context.Context, task domain.SyncTask) error {
	_, err := r.db.Exec(ctx, `DELETE FROM search_sync_tasks WHERE id = $1 AND revision = $2`, task.ID, task.Revision)
	return err
}

func (r *syncTaskRepo) Retry(ctx context.Context, task domain.SyncTask, delay time.Duration, cause string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE search_sync_tasks
		SET attempts = attempts + 1, last_error = $3, available_at = NOW() + make_interval(secs => $4)
		WHERE id = $1 AND revision = $2`,
		task.ID, task.Revision, cause, delay.Seconds())
	return err
}

func (r *syncTaskRepo) Fail(ctx context.Context, task domain.SyncTask, cause string) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO search_sync_failures (job_id, action, attempts, last_error)
			VALUES ($1, $2, $3, $4)`,
			task.JobID, string(task.Action), task.Attempts+1, cause)
		if err != nil {
			return err
		}
		// A newer revision stays queued
		_, err = tx.Exec(ctx, `DELETE FROM search_sync_tasks WHERE id = $1 AND revision = $2`, task.ID, task.Revision)
		return err
	})
}

func (r *syncTaskRepo) ListFailures(ctx context.Context, limit int) ([]domain.SyncFailure, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, job_id, action, attempts, last_error, failed_at
		FROM search_sync_failures ORDER BY failed_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	failures := []domain.SyncFailure{}
	for rows.Next() {
		var f domain.SyncFailure
		var action string
		if err := rows.Scan(&f.ID, &f.JobID, &action, &f.Attempts, &f.LastError, &f.FailedAt); err != nil {
			return nil, err
		}
		f.Action = domain.SyncAction(action)
		failures = append(failures, f)
	}
	return failures, rows.Err()
}
