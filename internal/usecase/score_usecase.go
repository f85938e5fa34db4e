package usecase

import (
	"context"
	"fmt"
	"time"

	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/internal/scoring"
	"go-peerrank-backend/pkg/apperror"
	"go-peerrank-backend/pkg/logger"
	"go-peerrank-backend/pkg/metrics"
)

type scoreUsecase struct {
	userRepo           domain.UserRepository
	educationRepo      domain.EducationRepository
	workRepo           domain.WorkExperienceRepository
	recommendationRepo domain.RecommendationRepository
	cache              domain.ScoreCache
	clock              Clock
}

func NewScoreUsecase(
	userRepo domain.UserRepository,
	educationRepo domain.EducationRepository,
	workRepo domain.WorkExperienceRepository,
	recommendationRepo domain.RecommendationRepository,
	cache domain.ScoreCache,
	clock Clock,
) domain.ScoreUsecase {
	if clock == nil {
		clock = SystemClock
	}
	return &scoreUsecase{
		userRepo:           userRepo,
		educationRepo:      educationRepo,
		workRepo:           workRepo,
		recommendationRepo: recommendationRepo,
		cache:              cache,
		clock:              clock,
	}
}

func (u *scoreUsecase) ScoreEducationEntry(ctx context.Context, educationID int64) (*domain.EducationEntryScore, error) {
	entry, err := u.educationRepo.GetByID(ctx, educationID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Education entry not found")
	}
	scored := scoring.ScoreEducationEntry(*entry)
	return &scored, nil
}

func (u *scoreUsecase) ScoreWorkEntry(ctx context.Context, workID int64) (*domain.WorkEntryScore, error) {
	entry, err := u.workRepo.GetByID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Work experience not found")
	}
	scored := scoring.ScoreWorkEntry(*entry, u.clock())
	return &scored, nil
}

func (u *scoreUsecase) ComputeAchievement(ctx context.Context, userID int64) (*domain.AchievementScore, error) {
	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	today := u.clock()
	key, cacheable := cacheKey(ctx, u.cache, domain.ScoreKindAchievement, userID, today)

	var cached domain.AchievementScore
	if cacheable && cacheGet(ctx, u.cache, key, &cached) {
		return &cached, nil
	}

	ids := []int64{userID}
	education, err := u.educationRepo.ListVerifiedByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	work, err := u.workRepo.ListVerifiedByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	achievement := scoring.ComputeAchievement(userID, education, work, today)
	metrics.ScoreComputations.WithLabelValues(domain.ScoreKindAchievement).Inc()

	if cacheable {
		cacheSet(ctx, u.cache, key, achievement)
	}
	return achievement, nil
}

func (u *scoreUsecase) ComputeRecommendationTotal(ctx context.Context, userID int64) (*domain.RecommendationTotal, error) {
	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	today := u.clock()
	key, cacheable := cacheKey(ctx, u.cache, domain.ScoreKindRecommendation, userID, today)

	var cached domain.RecommendationTotal
	if cacheable && cacheGet(ctx, u.cache, key, &cached) {
		return &cached, nil
	}

	recs, err := u.recommendationRepo.ListApprovedByRequesterIDs(ctx, []int64{userID})
	if err != nil {
		return nil, err
	}

	recommenderIDs := make([]int64, 0, len(recs))
	seen := make(map[int64]bool, len(recs))
	for _, r := range recs {
		if !seen[r.RecommenderID] {
			seen[r.RecommenderID] = true
			recommenderIDs = append(recommenderIDs, r.RecommenderID)
		}
	}

	// One batched achievement lookup for all recommenders instead of one per recommendation
	totals, err := loadAchievementTotals(ctx, u.educationRepo, u.workRepo, recommenderIDs, today)
	if err != nil {
		return nil, err
	}

	total, err := scoring.ComputeRecommendationTotal(userID, recs, scoring.TotalsFrom(totals))
	if err != nil {
		return nil, err
	}
	metrics.ScoreComputations.WithLabelValues(domain.ScoreKindRecommendation).Inc()

	if cacheable {
		cacheSet(ctx, u.cache, key, total)
	}
	return total, nil
}

func (u *scoreUsecase) ensureUser(ctx context.Context, userID int64) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NotFound("User not found")
	}
	return nil
}

// loadAchievementTotals bulk-loads verified entries for userIDs and totals them in memory.
func loadAchievementTotals(
	ctx context.Context,
	educationRepo domain.EducationRepository,
	workRepo domain.WorkExperienceRepository,
	userIDs []int64,
	today time.Time,
) (map[int64]int, error) {
	if len(userIDs) == 0 {
		return map[int64]int{}, nil
	}

	education, err := educationRepo.ListVerifiedByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load verified education: %w", err)
	}
	work, err := workRepo.ListVerifiedByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("load verified work: %w", err)
	}
	return scoring.AchievementTotals(userIDs, education, work, today), nil
}

// cacheKey pins the key to the generation current before any records are
// loaded. The bool is false when the cache is absent or unreadable.
func cacheKey(ctx context.Context, cache domain.ScoreCache, kind string, userID int64, today time.Time) (domain.ScoreKey, bool) {
	key := domain.ScoreKey{Kind: kind, UserID: userID, Day: dayKey(today)}
	if cache == nil {
		return key, false
	}
	gen, err := cache.Generation(ctx)
	if err != nil {
		logger.Log.Warn("Score cache generation read failed", "kind", kind, "user_id", userID, "error", err)
		metrics.ScoreCacheResults.WithLabelValues(kind, "error").Inc()
		return key, false
	}
	key.Generation = gen
	return key, true
}

func cacheGet(ctx context.Context, cache domain.ScoreCache, key domain.ScoreKey, dst any) bool {
	if cache == nil {
		return false
	}
	hit, err := cache.Get(ctx, key, dst)
	switch {
	case err != nil:
		logger.Log.Warn("Score cache read failed", "kind", key.Kind, "user_id", key.UserID, "error", err)
		metrics.ScoreCacheResults.WithLabelValues(key.Kind, "error").Inc()
		return false
	case hit:
		metrics.ScoreCacheResults.WithLabelValues(key.Kind, "hit").Inc()
	default:
		metrics.ScoreCacheResults.WithLabelValues(key.Kind, "miss").Inc()
	}
	return hit
}

func cacheSet(ctx context.Context, cache domain.ScoreCache, key domain.ScoreKey, value any) {
	if cache == nil {
		return
	}
	if err := cache.Set(ctx, key, value); err != nil {
		logger.Log.Warn("Score cache write failed", "kind", key.Kind, "user_id", key.UserID, "error", err)
	}
}

func invalidateScores(ctx context.Context, cache domain.ScoreCache, reason string) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logger.Log.Error("Score cache invalidation failed", "reason", reason, "error", err)
	}
}
