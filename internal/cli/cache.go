package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the score cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "flush",
		Short: "Invalidate every cached score",
		Long: `Bumps the cache generation so every cached achievement and recommendation
score is recomputed on next read. Use after editing verification data
directly in the database.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withServices(cmd, func(ctx context.Context, s *services) error {
				if err := s.Cache.Invalidate(ctx); err != nil {
					return fmt.Errorf("failed to flush score cache: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "score cache flushed")
				return nil
			})
		},
	})
	return cmd
}
