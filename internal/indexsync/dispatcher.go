package indexsync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"job-portal-backend/internal/domain"
)

// Dispatcher polls the outbox and feeds due tasks to the worker pool.
type Dispatcher struct {
	sync      *Synchronizer
	pool      *Pool
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

func NewDispatcher(s *Synchronizer, pool *Pool, interval time.Duration, batchSize int, logger *slog.Logger) *Dispatcher {
	if interval <= 0 {
		interval = time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{sync: s, pool: pool, interval: interval, batchSize: batchSize, logger: logger}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("search sync dispatcher started",
		slog.Duration("interval", d.interval),
		slog.Int("batch_size", d.batchSize),
	)

	for {
		if _, err := d.DispatchOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			d.logger.Error("search sync dispatch failed", slog.String("error", err.Error()))
		}

		select {
		case <-ctx.Done():
			d.logger.Info("search sync dispatcher stopped")
			return
		case <-ticker.C:
		}
	}
}

// DispatchOnce claims as many due tasks as the pool can take and submits them.
// Tasks the pool rejects stay leased and become due again when the lease expires.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	limit := d.batchSize
	if free := d.pool.Free(); free < limit {
		limit = free
	}
	if limit <= 0 {
		return 0, nil
	}

	tasks, err := d.sync.Claim(ctx, limit)
	if err != nil {
		return 0, err
	}

	submitted := 0
	for _, task := range tasks {
		t := task
		err := d.pool.Submit(func(taskCtx context.Context) error {
			return d.handle(taskCtx, t)
		})
		if err != nil {
			d.logger.Warn("search sync task not submitted",
				slog.Int64("task_id", t.ID),
				slog.String("error", err.Error()),
			)
			continue
		}
		submitted++
	}
	return submitted, nil
}

func (d *Dispatcher) handle(ctx context.Context, task domain.SyncTask) error {
	if err := d.sync.Handle(ctx, task); err != nil {
		d.logger.Error("search sync task bookkeeping failed",
			slog.Int64("task_id", task.ID),
			slog.Int64("job_id", task.JobID),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
