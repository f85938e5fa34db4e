package usecase

import (
	"context"
	"time"

	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/internal/scoring"
	"go-peerrank-backend/pkg/apperror"
	"go-peerrank-backend/pkg/metrics"
)

type leaderboardUsecase struct {
	userRepo           domain.UserRepository
	educationRepo      domain.EducationRepository
	workRepo           domain.WorkExperienceRepository
	recommendationRepo domain.RecommendationRepository
	clock              Clock
	defaultLimit       int
	maxLimit           int
}

func NewLeaderboardUsecase(
	userRepo domain.UserRepository,
	educationRepo domain.EducationRepository,
	workRepo domain.WorkExperienceRepository,
	recommendationRepo domain.RecommendationRepository,
	clock Clock,
	defaultLimit, maxLimit int,
) domain.LeaderboardUsecase {
	if clock == nil {
		clock = SystemClock
	}
	return &leaderboardUsecase{
		userRepo:           userRepo,
		educationRepo:      educationRepo,
		workRepo:           workRepo,
		recommendationRepo: recommendationRepo,
		clock:              clock,
		defaultLimit:       defaultLimit,
		maxLimit:           maxLimit,
	}
}

// Rank evaluates every user in four queries (users, verified education,
// verified work, approved recommendations) and ranks them in memory.
func (u *leaderboardUsecase) Rank(ctx context.Context, mode domain.LeaderboardMode, limit int) ([]domain.LeaderboardEntry, error) {
	mode, err := scoring.ParseLeaderboardMode(string(mode))
	if err != nil {
		return nil, apperror.BadRequest("Invalid leaderboard mode: must be combined, achievements or recommendations")
	}

	start := time.Now()
	defer func() {
		metrics.LeaderboardDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
	}()

	rows, err := u.collectTotals(ctx)
	if err != nil {
		return nil, err
	}
	return scoring.RankLeaderboard(rows, mode, u.clampLimit(limit))
}

func (u *leaderboardUsecase) clampLimit(limit int) int {
	if limit < 1 {
		return u.defaultLimit
	}
	if u.maxLimit > 0 && limit > u.maxLimit {
		return u.maxLimit
	}
	return limit
}

func (u *leaderboardUsecase) collectTotals(ctx context.Context) ([]domain.UserTotals, error) {
	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return []domain.UserTotals{}, nil
	}

	today := u.clock()
	ids := make([]int64, len(users))
	for i, user := range users {
		ids[i] = user.ID
	}

	achievements, err := loadAchievementTotals(ctx, u.educationRepo, u.workRepo, ids, today)
	if err != nil {
		return nil, err
	}

	recs, err := u.recommendationRepo.ListApprovedByRequesterIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	recsByRequester := make(map[int64][]domain.Recommendation)
	for _, r := range recs {
		recsByRequester[r.RequesterID] = append(recsByRequester[r.RequesterID], r)
	}

	// Recommenders are users, so their totals are already in achievements
	lookup := scoring.TotalsFrom(achievements)

	rows := make([]domain.UserTotals, len(users))
	for i, user := range users {
		recTotal, err := scoring.ComputeRecommendationTotal(user.ID, recsByRequester[user.ID], lookup)
		if err != nil {
			return nil, err
		}
		rows[i] = domain.UserTotals{
			User: domain.LeaderboardUser{
				ID:       user.ID,
				FullName: user.FullName,
				Username: user.Username,
			},
			AchievementTotal:    achievements[user.ID],
			RecommendationTotal: recTotal.Total,
		}
	}
	metrics.ScoreComputations.WithLabelValues("leaderboard").Inc()
	return rows, nil
}
