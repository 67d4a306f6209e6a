package indexsync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/metrics"
)

// ReconcileResult summarises one reconciliation sweep.
type ReconcileResult struct {
	StoreCount     int `json:"store_count"`
	IndexCount     int `json:"index_count"`
	MissingInIndex int `json:"missing_in_index"`
	StaleInIndex   int `json:"stale_in_index"`
	EnqueuedIndex  int `json:"enqueued_index"`
	EnqueuedDelete int `json:"enqueued_delete"`
}

// Reconciler diffs the ids in the store against those in the index.
type Reconciler struct {
	jobs    JobSource
	index   domain.SearchIndex
	tasks   domain.SyncTaskRepository
	metrics metrics.Recorder
	logger  *slog.Logger
}

func NewReconciler(jobs JobSource, index domain.SearchIndex, tasks domain.SyncTaskRepository, rec metrics.Recorder, logger *slog.Logger) *Reconciler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{jobs: jobs, index: index, tasks: tasks, metrics: rec, logger: logger}
}

// Diff returns store ids missing from the index and index ids with no store record.
func Diff(storeIDs, indexIDs []int64) (toIndex, toDelete []int64) {
	inStore := make(map[int64]struct{}, len(storeIDs))
	for _, id := range storeIDs {
		inStore[id] = struct{}{}
	}
	inIndex := make(map[int64]struct{}, len(indexIDs))
	for _, id := range indexIDs {
		inIndex[id] = struct{}{}
	}

	toIndex = []int64{}
	for _, id := range storeIDs {
		if _, ok := inIndex[id]; !ok {
			toIndex = append(toIndex, id)
		}
	}
	toDelete = []int64{}
	for _, id := range indexIDs {
		if _, ok := inStore[id]; !ok {
			toDelete = append(toDelete, id)
		}
	}
	return toIndex, toDelete
}

// Reconcile runs one sweep. Enqueueing skips ids that already have a pending
// task, so repeating a sweep with no writes in between enqueues nothing.
func (r *Reconciler) Reconcile(ctx context.Context) (ReconcileResult, error) {
	var res ReconcileResult

	storeIDs, err := r.jobs.ListIDs(ctx)
	if err != nil {
		return res, fmt.Errorf("list store ids: %w", err)
	}
	indexIDs, err := r.index.ListIDs(ctx)
	if err != nil {
		return res, fmt.Errorf("list index ids: %w", err)
	}
	res.StoreCount = len(storeIDs)
	res.IndexCount = len(indexIDs)

	toIndex, toDelete := Diff(storeIDs, indexIDs)
	res.MissingInIndex = len(toIndex)
	res.StaleInIndex = len(toDelete)

	for _, id := range toIndex {
		added, err := r.tasks.EnqueueIfAbsent(ctx, id, domain.SyncActionIndex)
		if err != nil {
			return res, fmt.Errorf("enqueue index for job %d: %w", id, err)
		}
		if added {
			res.EnqueuedIndex++
		}
	}
	for _, id := range toDelete {
		added, err := r.tasks.EnqueueIfAbsent(ctx, id, domain.SyncActionDelete)
		if err != nil {
			return res, fmt.Errorf("enqueue delete for job %d: %w", id, err)
		}
		if added {
			res.EnqueuedDelete++
		}
	}

	r.metrics.RecordReconcileEnqueued(string(domain.SyncActionIndex), res.EnqueuedIndex)
	r.metrics.RecordReconcileEnqueued(string(domain.SyncActionDelete), res.EnqueuedDelete)
	r.logger.Info("search index reconciled",
		slog.Int("store_count", res.StoreCount),
		slog.Int("index_count", res.IndexCount),
		slog.Int("enqueued_index", res.EnqueuedIndex),
		slog.Int("enqueued_delete", res.EnqueuedDelete),
	)
	return res, nil
}

// DefaultReconcileInterval is used when Start is given a non-positive interval.
const DefaultReconcileInterval = 15 * time.Minute

// Start reconciles immediately and then every interval until ctx is cancelled.
func (r *Reconciler) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultReconcileInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := r.Reconcile(ctx); err != nil {
			r.logger.Error("search index reconciliation failed", slog.String("error", err.Error()))
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
