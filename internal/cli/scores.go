package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parseUserID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}

func newAchievementCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "achievement <user-id>",
		Short: "Print a user's achievement score with its breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			return withServices(cmd, func(ctx context.Context, s *services) error {
				score, err := s.Score.ComputeAchievement(ctx, userID)
				if err != nil {
					return err
				}
				if jsonOutput {
					return printJSON(cmd.OutOrStdout(), score)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "user %d achievement %d\n", score.UserID, score.Total)
				fmt.Fprintf(out, "  education %d (%d entries)\n", score.EducationTotal, score.EducationCount)
				for _, e := range score.EducationBreakdown {
					fmt.Fprintf(out, "    #%d %s %s: %d\n", e.EducationID, e.DegreeType, e.UniversityName, e.Score)
				}
				fmt.Fprintf(out, "  work %d (%d entries)\n", score.WorkTotal, score.WorkCount)
				for _, w := range score.WorkBreakdown {
					fmt.Fprintf(out, "    #%d %s at %s, %d months: %d\n", w.WorkID, w.Title, w.CompanyName, w.Breakdown.Months, w.Score)
				}
				fmt.Fprintf(out, "  streaks %d\n", score.WorkStreakTotal)
				for _, streak := range score.WorkStreakBreakdown {
					fmt.Fprintf(out, "    %s, %d months: %d\n", streak.Company, streak.TotalMonths, streak.StreakBonus)
				}
				return nil
			})
		},
	}
}

func newRecommendationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recommendation <user-id>",
		Short: "Print a user's recommendation score with its breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			return withServices(cmd, func(ctx context.Context, s *services) error {
				total, err := s.Score.ComputeRecommendationTotal(ctx, userID)
				if err != nil {
					return err
				}
				if jsonOutput {
					return printJSON(cmd.OutOrStdout(), total)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "user %d recommendation %d (%d approved)\n", total.UserID, total.Total, total.Count)
				for _, r := range total.Breakdown {
					fmt.Fprintf(out, "  #%d from %d (%s, recommender achievement %d): %d x %.1f = %d\n",
						r.RecommendationID, r.RecommenderID, r.RecType, r.RecommenderAchievementTotal,
						r.Breakdown.Base, r.Breakdown.Weight, r.Points)
				}
				return nil
			})
		},
	}
}
