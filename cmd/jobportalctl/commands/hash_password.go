package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"job-portal-backend/pkg/password"
)

// NewHashPasswordCommand prints bcrypt digests, for seeding accounts directly in SQL.
func NewHashPasswordCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password <password>...",
		Args:  cobra.MinimumNArgs(1),
		Short: "Print the stored digest for one or more passwords",
		RunE: func(cmd *cobra.Command, args []string) error {
			hasher := password.NewHasher(cost)
			for _, plain := range args {
				digest, err := hasher.Hash(plain)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), digest)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", password.DefaultCost, "bcrypt cost")
	return cmd
}
