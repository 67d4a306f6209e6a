package domain

import (
	"context"
	"time"
)

type SyncAction string

const (
	SyncActionIndex  SyncAction = "index"
	SyncActionDelete SyncAction = "delete"
)

// SyncTask is a pending search index operation recorded in the outbox.
type SyncTask struct {
	ID          int64      `json:"id"`
	JobID       int64      `json:"job_id"`
	Action      SyncAction `json:"action"`
	Revision    int64      `json:"revision"`
	Attempts    int        `json:"attempts"`
	LastError   string     `json:"last_error,omitempty"`
	AvailableAt time.Time  `json:"available_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SyncFailure records a task that exhausted its retries.
type SyncFailure struct {
	ID        int64      `json:"id"`
	JobID     int64      `json:"job_id"`
	Action    SyncAction `json:"action"`
	Attempts  int        `json:"attempts"`
	LastError string     `json:"last_error"`
	FailedAt  time.Time  `json:"failed_at"`
}

type SyncTaskRepository interface {
	// Enqueue records a task, or bumps the revision of the pending one and makes it due now.
	Enqueue(ctx context.Context, jobID int64, action SyncAction) error
	// EnqueueIfAbsent records a task unless one is already pending. Reports whether a row was added.
	EnqueueIfAbsent(ctx context.Context, jobID int64, action SyncAction) (bool, error)
	// ClaimDue leases up to limit due tasks by pushing their availability forward by lease.
	ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]SyncTask, error)
	// Complete removes the task if it has not been re-enqueued since it was claimed.
	Complete(ctx context.Context, task SyncTask) error
	// Retry records a failed attempt and schedules the task after delay.
	Retry(ctx context.Context, task SyncTask, delay time.Duration, cause string) error
	// Fail moves the task to the failure log.
	Fail(ctx context.Context, task SyncTask, cause string) error
	ListFailures(ctx context.Context, limit int) ([]SyncFailure, error)
}
