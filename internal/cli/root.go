// Package cli implements scorectl, the operator command line for inspecting
// scores and the leaderboard without going through the HTTP API.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go-peerrank-backend/config"
	"go-peerrank-backend/internal/app"
	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/logger"

	"github.com/spf13/cobra"
)

// services is the subset of the application the commands use.
type services struct {
	Score       domain.ScoreUsecase
	Leaderboard domain.LeaderboardUsecase
	Cache       domain.ScoreCache
	Close       func()
}

//nolint:gochecknoglobals // replaced in tests
var loadServices = func(ctx context.Context, logOut io.Writer) (*services, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.InitWriter(logOut, cfg.LogLevel)

	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialise: %w", err)
	}
	return &services{
		Score:       a.ScoreUC,
		Leaderboard: a.LeaderboardUC,
		Cache:       a.Cache,
		Close:       a.Close,
	}, nil
}

//nolint:gochecknoglobals // Cobra boilerplate
var jsonOutput bool

// NewRootCommand builds the scorectl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "scorectl",
		Short: "Inspect peer-ranked scores and the leaderboard",
		Long: `scorectl computes achievement scores, recommendation scores and the
leaderboard directly against the configured database, using the same
configuration (.env / environment) as the API server.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	root.AddCommand(
		newLeaderboardCommand(),
		newAchievementCommand(),
		newRecommendationCommand(),
		newCacheCommand(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// withServices loads the application for the duration of fn.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, s *services) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := loadServices(ctx, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if s.Close != nil {
		defer s.Close()
	}
	return fn(ctx, s)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
