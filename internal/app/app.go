// Package app wires configuration, storage and usecases shared by the API
// server and the operator CLI.
package app

import (
	"context"
	"errors"

	"go-peerrank-backend/config"
	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/internal/repository/cache"
	"go-peerrank-backend/internal/repository/postgres"
	"go-peerrank-backend/internal/usecase"
	"go-peerrank-backend/pkg/database"
	"go-peerrank-backend/pkg/logger"
	redisclient "go-peerrank-backend/pkg/redis"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

type App struct {
	Config *config.Config
	DB     *pgxpool.Pool
	Redis  *goredis.Client // nil when REDIS_URL is not set
	Cache  domain.ScoreCache

	AuthUC           domain.AuthUsecase
	ScoreUC          domain.ScoreUsecase
	LeaderboardUC    domain.LeaderboardUsecase
	VerificationUC   domain.VerificationUsecase
	RecommendationUC domain.RecommendationUsecase
	HealthUC         usecase.HealthUsecase
}

// New connects to Postgres (required) and Redis (optional) and builds every usecase.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		return nil, err
	}

	a := &App{Config: cfg, DB: dbPool}

	client, err := redisclient.NewClient(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redisclient.ErrNotConfigured):
		a.Cache = cache.NewNoopScoreCache()
	case err != nil:
		// Scores stay correct without the cache, only slower
		logger.Log.Warn("Redis unavailable, score cache disabled", "error", err)
		a.Cache = cache.NewNoopScoreCache()
	default:
		logger.Log.Info("Redis connection established")
		a.Redis = client
		a.Cache = cache.NewRedisScoreCache(client, cfg.ScoreRuleVersion, cfg.ScoreCacheTTL)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	educationRepo := postgres.NewEducationRepository(dbPool)
	workRepo := postgres.NewWorkExperienceRepository(dbPool)
	recommendationRepo := postgres.NewRecommendationRepository(dbPool)

	// Usecases
	clock := usecase.SystemClock
	a.AuthUC = usecase.NewAuthUsecase(userRepo)
	a.ScoreUC = usecase.NewScoreUsecase(userRepo, educationRepo, workRepo, recommendationRepo, a.Cache, clock)
	a.LeaderboardUC = usecase.NewLeaderboardUsecase(userRepo, educationRepo, workRepo, recommendationRepo, clock,
		cfg.LeaderboardDefaultLimit, cfg.LeaderboardMaxLimit)
	a.VerificationUC = usecase.NewVerificationUsecase(educationRepo, workRepo, a.Cache, clock)
	a.RecommendationUC = usecase.NewRecommendationUsecase(recommendationRepo, a.Cache, clock)

	checks := map[string]usecase.HealthCheck{
		"database": dbPool.Ping,
	}
	if a.Redis != nil {
		checks["redis"] = func(ctx context.Context) error {
			return redisclient.HealthCheck(ctx, a.Redis)
		}
	}
	a.HealthUC = usecase.NewHealthUsecase(checks)

	return a, nil
}

func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Warn("Failed to close redis client", "error", err)
		}
	}
	a.DB.Close()
}
