// Package indexsync keeps the job search index consistent with the record store.
//
// Job writes record a task in the search_sync_tasks outbox inside their own
// transaction. A Dispatcher claims due tasks and runs them on a worker pool;
// failed tasks are retried on a fixed delay and, once retries are exhausted,
// moved to a failure log. A Reconciler periodically diffs store and index ids
// and enqueues whatever is missing or stale.
package indexsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/metrics"
	"job-portal-backend/pkg/security"
)

// JobSource is the read side of the record store the synchronizer needs.
type JobSource interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	ListIDs(ctx context.Context) ([]int64, error)
}

type Options struct {
	// Retry defaults to DefaultRetryPolicy when nil. A zero policy fails on
	// the first error.
	Retry *RetryPolicy
	// Lease is how long a claimed task stays invisible to other claimers.
	Lease   time.Duration
	Metrics metrics.Recorder
	OpsLog  *security.SecurityLogger
	Logger  *slog.Logger
}

type Synchronizer struct {
	tasks   domain.SyncTaskRepository
	jobs    JobSource
	index   domain.SearchIndex
	retry   RetryPolicy
	lease   time.Duration
	metrics metrics.Recorder
	opsLog  *security.SecurityLogger
	logger  *slog.Logger
}

func NewSynchronizer(tasks domain.SyncTaskRepository, jobs JobSource, index domain.SearchIndex, opts Options) *Synchronizer {
	retry := DefaultRetryPolicy()
	if opts.Retry != nil {
		retry = *opts.Retry
	}
	if opts.Lease <= 0 {
		opts.Lease = 5 * time.Minute
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.Nop{}
	}
	if opts.OpsLog == nil {
		opts.OpsLog = security.Nop()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Synchronizer{
		tasks:   tasks,
		jobs:    jobs,
		index:   index,
		retry:   retry,
		lease:   opts.Lease,
		metrics: opts.Metrics,
		opsLog:  opts.OpsLog,
		logger:  opts.Logger,
	}
}

// Execute applies one task to the index. Indexing a job that no longer
// exists and deleting a document that is already gone both succeed.
func (s *Synchronizer) Execute(ctx context.Context, task domain.SyncTask) error {
	switch task.Action {
	case domain.SyncActionIndex:
		job, err := s.jobs.GetByID(ctx, task.JobID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load job %d: %w", task.JobID, err)
		}
		return s.index.Upsert(ctx, domain.NewJobDocument(job))
	case domain.SyncActionDelete:
		return s.index.Delete(ctx, task.JobID)
	default:
		return fmt.Errorf("unknown sync action %q", task.Action)
	}
}

// Handle executes task and records the outcome in the outbox.
func (s *Synchronizer) Handle(ctx context.Context, task domain.SyncTask) error {
	action := string(task.Action)

	execErr := s.Execute(ctx, task)
	if execErr == nil {
		s.metrics.RecordSyncTask(action, metrics.ResultSuccess)
		return s.tasks.Complete(ctx, task)
	}

	cause := execErr.Error()
	if s.retry.ShouldRetry(task.Attempts) {
		delay := s.retry.NextDelay(task.Attempts)
		s.metrics.RecordSyncTask(action, metrics.ResultRetry)
		s.metrics.RecordSyncRetry(action)
		s.logger.Warn("search sync task failed, retrying",
			slog.Int64("job_id", task.JobID),
			slog.String("action", action),
			slog.Int("attempt", task.Attempts+1),
			slog.Duration("retry_in", delay),
			slog.String("error", cause),
		)
		return s.tasks.Retry(ctx, task, delay, cause)
	}

	s.metrics.RecordSyncTask(action, metrics.ResultFailed)
	s.metrics.RecordSyncFailure(action)
	s.opsLog.LogSyncTaskFailed(ctx, task.JobID, action, task.Attempts+1, cause)
	return s.tasks.Fail(ctx, task, cause)
}

// Claim leases up to limit due tasks.
func (s *Synchronizer) Claim(ctx context.Context, limit int) ([]domain.SyncTask, error) {
	return s.tasks.ClaimDue(ctx, limit, s.lease)
}

// ProcessDue claims and handles up to limit due tasks inline. It returns how
// many tasks were handled.
func (s *Synchronizer) ProcessDue(ctx context.Context, limit int) (int, error) {
	tasks, err := s.Claim(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("claim sync tasks: %w", err)
	}
	for _, task := range tasks {
		if err := s.Handle(ctx, task); err != nil {
			return 0, fmt.Errorf("handle sync task %d: %w", task.ID, err)
		}
	}
	return len(tasks), nil
}
