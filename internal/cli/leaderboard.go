package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"go-peerrank-backend/internal/domain"

	"github.com/spf13/cobra"
)

func newLeaderboardCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "leaderboard [combined|achievements|recommendations]",
		Short: "Print the leaderboard",
		Long: `Ranks every user. combined blends the achievement and recommendation
percentile ranks (0.6 / 0.4); the other modes rank by raw totals.

Examples:
  scorectl leaderboard
  scorectl leaderboard recommendations --limit 10 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := domain.LeaderboardCombined
			if len(args) == 1 {
				mode = domain.LeaderboardMode(args[0])
			}

			return withServices(cmd, func(ctx context.Context, s *services) error {
				entries, err := s.Leaderboard.Rank(ctx, mode, limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					return printJSON(cmd.OutOrStdout(), entries)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "RANK\tUSER\tNAME\tACHIEVEMENT\tRECOMMENDATION\tCOMBINED")
				for _, e := range entries {
					combined := "-"
					if e.Percentiles != nil {
						combined = fmt.Sprintf("%.4f", e.Percentiles.Combined)
					}
					fmt.Fprintf(w, "%d\t%d\t%s\t%d\t%d\t%s\n",
						e.Rank, e.User.ID, e.User.FullName, e.AchievementScore, e.RecommendationScore, combined)
				}
				return w.Flush()
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Number of entries (default from LEADERBOARD_DEFAULT_LIMIT)")
	return cmd
}
