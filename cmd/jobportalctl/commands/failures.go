package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"job-portal-backend/internal/repository/postgres"
)

// NewFailuresCommand lists sync tasks that exhausted their retries.
func NewFailuresCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "failures",
		Args:  cobra.NoArgs,
		Short: "List search sync tasks that failed permanently",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			_, pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			failures, err := postgres.NewSyncTaskRepository(pool).ListFailures(ctx, limit)
			if err != nil {
				return err
			}
			if len(failures) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no failed sync tasks")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tACTION\tATTEMPTS\tFAILED AT\tERROR")
			for _, f := range failures {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", f.JobID, f.Action, f.Attempts, f.FailedAt.Format(time.RFC3339), f.LastError)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum number of failures to show")
	return cmd
}
