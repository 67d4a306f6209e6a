package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"job-portal-backend/internal/indexsync"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/repository/search"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
)

// NewReconcileCommand runs one reconciliation sweep and prints its counts.
func NewReconcileCommand() *cobra.Command {
	var process bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Args:  cobra.NoArgs,
		Short: "Compare the search index with the database and enqueue corrections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			index, err := search.NewIndex(cfg)
			if err != nil {
				return err
			}
			if err := index.EnsureIndex(ctx); err != nil {
				return err
			}

			jobs := postgres.NewJobRepository(pool)
			tasks := postgres.NewSyncTaskRepository(pool)
			res, err := indexsync.NewReconciler(jobs, index, tasks, metrics.Nop{}, logger.Log).Reconcile(ctx)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}

			if !process {
				return nil
			}
			syncer := indexsync.NewSynchronizer(tasks, jobs, index, indexsync.Options{
				Retry:  &indexsync.RetryPolicy{MaxRetries: cfg.SyncMaxRetries, Delay: cfg.SyncRetryDelay},
				Logger: logger.Log,
			})
			n, err := syncer.ProcessDue(ctx, cfg.SyncBatchSize)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "processed %d sync tasks\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&process, "process", false, "also execute one batch of due sync tasks")
	return cmd
}
