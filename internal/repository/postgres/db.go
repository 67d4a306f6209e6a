package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"job-portal-backend/internal/domain"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// withTx runs fn in a transaction, committing only if fn returns nil.
func withTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// notFound maps a missing row to domain.ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// requireAffected turns a zero-row write into domain.ErrNotFound.
func requireAffected(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// enqueueSync records a pending index task for jobID. An existing pending
// task for the same (job, action) gets a new revision and becomes due now.
func enqueueSync(ctx context.Context, q querier, jobID int64, action domain.SyncAction) error {
	_, err := q.Exec(ctx, `
		INSERT INTO search_sync_tasks (job_id, action)
		VALUES ($1, $2)
		ON CONFLICT (job_id, action) DO UPDATE
		SET revision = search_sync_tasks.revision + 1,
		    attempts = 0,
		    last_error = '',
		    available_at = NOW()`,
		jobID, string(action))
	if err != nil {
		return fmt.Errorf("enqueue %s task for job %d: %w", action, jobID, err)
	}
	return nil
}

// enqueueDeletesForJobs schedules index removal for every job matched by
// the given id subquery, before a cascading delete removes the jobs.
func enqueueDeletesForJobs(ctx context.Context, q querier, jobFilter string, arg int64) error {
	rows, err := q.Query(ctx, `SELECT id FROM jobs WHERE `+jobFilter, arg)
	if err != nil {
		return err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := enqueueSync(ctx, q, id, domain.SyncActionDelete); err != nil {
			return err
		}
	}
	return nil
}

func pageArgs(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
