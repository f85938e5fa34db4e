package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/internal/repository/cache"
	"go-peerrank-backend/internal/usecase"
	"go-peerrank-backend/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scoreMocks struct {
	users *MockUserRepo
	edu   *MockEducationRepo
	work  *MockWorkRepo
	recs  *MockRecommendationRepo
}

func newScoreUsecase(scoreCache domain.ScoreCache) (domain.ScoreUsecase, scoreMocks) {
	m := scoreMocks{
		users: new(MockUserRepo),
		edu:   new(MockEducationRepo),
		work:  new(MockWorkRepo),
		recs:  new(MockRecommendationRepo),
	}
	uc := usecase.NewScoreUsecase(m.users, m.edu, m.work, m.recs, scoreCache, fixedClock)
	return uc, m
}

func TestComputeAchievement(t *testing.T) {
	ctx := context.Background()

	t.Run("Should sum verified education, work and streaks", func(t *testing.T) {
		uc, m := newScoreUsecase(cache.NewNoopScoreCache())
		m.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		m.edu.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.EducationEntry{verifiedEducation(10, 1)}, nil)
		m.work.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.WorkExperience{verifiedJob(20, 1)}, nil)

		score, err := uc.ComputeAchievement(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 50, score.EducationTotal)
		assert.Equal(t, 32, score.WorkTotal)
		assert.Equal(t, 3, score.WorkStreakTotal)
		assert.Equal(t, 85, score.Total)
		assert.Equal(t, 1, score.EducationCount)
		assert.Equal(t, 1, score.WorkCount)
	})

	t.Run("Should return not found for unknown user", func(t *testing.T) {
		uc, m := newScoreUsecase(cache.NewNoopScoreCache())
		m.users.On("GetByID", ctx, int64(404)).Return(nil, nil)

		_, err := uc.ComputeAchievement(ctx, 404)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.CodeOf(err))
		m.edu.AssertNotCalled(t, "ListVerifiedByUserIDs", mock.Anything, mock.Anything)
	})

	t.Run("Should propagate repository failures", func(t *testing.T) {
		uc, m := newScoreUsecase(cache.NewNoopScoreCache())
		m.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		m.edu.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return(nil, errors.New("db down"))

		_, err := uc.ComputeAchievement(ctx, 1)
		assert.EqualError(t, err, "db down")
	})

	t.Run("Should serve the second call from cache", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		uc, m := newScoreUsecase(cache.NewRedisScoreCache(client, "1", 0))
		m.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		m.edu.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.EducationEntry{verifiedEducation(10, 1)}, nil).Once()
		m.work.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.WorkExperience{verifiedJob(20, 1)}, nil).Once()

		first, err := uc.ComputeAchievement(ctx, 1)
		require.NoError(t, err)
		second, err := uc.ComputeAchievement(ctx, 1)
		require.NoError(t, err)

		assert.Equal(t, first.Total, second.Total)
		assert.Equal(t, first.WorkStreakBreakdown, second.WorkStreakBreakdown)
		m.edu.AssertNumberOfCalls(t, "ListVerifiedByUserIDs", 1)
		m.work.AssertNumberOfCalls(t, "ListVerifiedByUserIDs", 1)
	})

	t.Run("Should fall through to computation when the cache fails", func(t *testing.T) {
		failing := new(MockScoreCache)
		failing.On("Generation", ctx).Return(int64(3), nil)
		failing.On("Get", ctx, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))
		failing.On("Set", ctx, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		uc, m := newScoreUsecase(failing)
		m.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		m.edu.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.EducationEntry{}, nil)
		m.work.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.WorkExperience{}, nil)

		score, err := uc.ComputeAchievement(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, score.Total)
		failing.AssertExpectations(t)
	})

	t.Run("Should skip the cache when the generation cannot be read", func(t *testing.T) {
		failing := new(MockScoreCache)
		failing.On("Generation", ctx).Return(int64(0), errors.New("redis down"))

		uc, m := newScoreUsecase(failing)
		m.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		m.edu.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.EducationEntry{verifiedEducation(10, 1)}, nil)
		m.work.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.WorkExperience{}, nil)

		score, err := uc.ComputeAchievement(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 50, score.Total)
		failing.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
		failing.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should not serve a score computed before a concurrent invalidation", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		scoreCache := cache.NewRedisScoreCache(client, "1", time.Minute)
		uc, m := newScoreUsecase(scoreCache)
		m.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

		// The degree is approved while the first request is between its loads.
		m.edu.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.EducationEntry{}, nil).Once()
		m.edu.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.EducationEntry{verifiedEducation(10, 1)}, nil)
		m.work.On("ListVerifiedByUserIDs", ctx, []int64{1}).Run(func(mock.Arguments) {
			require.NoError(t, scoreCache.Invalidate(ctx))
		}).Return([]domain.WorkExperience{}, nil).Once()
		m.work.On("ListVerifiedByUserIDs", ctx, []int64{1}).Return([]domain.WorkExperience{}, nil)

		first, err := uc.ComputeAchievement(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, first.Total)
		assert.True(t, mr.Exists("score:v1:g0:2025-06-01:achievement:1"))

		second, err := uc.ComputeAchievement(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 50, second.Total)
		m.edu.AssertNumberOfCalls(t, "ListVerifiedByUserIDs", 2)
	})
}

func TestComputeRecommendationTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("Should weight each recommendation by the recommender's achievement", func(t *testing.T) {
		uc, m := newScoreUsecase(cache.NewNoopScoreCache())
		m.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		m.recs.On("ListApprovedByRequesterIDs", ctx, []int64{1}).Return([]domain.Recommendation{
			{ID: 5, RequesterID: 1, RecommenderID: 2, RecType: "academic", Status: domain.RecommendationStatusApproved},
			{ID: 6, RequesterID: 1, RecommenderID: 3, RecType: "work rec", Status: domain.RecommendationStatusApproved},
			{ID: 7, RequesterID: 1, RecommenderID: 2, RecType: "project", Status: domain.RecommendationStatusApproved},
		}, nil)
		// Recommenders are loaded in one batch, deduplicated
		m.edu.On("ListVerifiedByUserIDs", ctx, []int64{2, 3}).Return([]domain.EducationEntry{verifiedEducation(10, 2)}, nil)
		m.work.On("ListVerifiedByUserIDs", ctx, []int64{2, 3}).Return([]domain.WorkExperience{verifiedJob(20, 2)}, nil)

		total, err := uc.ComputeRecommendationTotal(ctx, 1)
		require.NoError(t, err)

		require.Len(t, total.Breakdown, 3)
		// recommender 2 totals 85: weight 1.2
		assert.Equal(t, 85, total.Breakdown[0].RecommenderAchievementTotal)
		assert.Equal(t, 10, total.Breakdown[0].Points) // 8 * 1.2 = 9.6
		// recommender 3 has nothing verified: weight 1.0
		assert.Equal(t, 0, total.Breakdown[1].RecommenderAchievementTotal)
		assert.Equal(t, 10, total.Breakdown[1].Points)
		assert.Equal(t, 7, total.Breakdown[2].Points) // 6 * 1.2 = 7.2
		assert.Equal(t, 27, total.Total)
		assert.Equal(t, 3, total.Count)

		m.edu.AssertNumberOfCalls(t, "ListVerifiedByUserIDs", 1)
	})

	t.Run("Should skip recommender lookups when nothing was approved", func(t *testing.T) {
		uc, m := newScoreUsecase(cache.NewNoopScoreCache())
		m.users.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		m.recs.On("ListApprovedByRequesterIDs", ctx, []int64{1}).Return([]domain.Recommendation{}, nil)

		total, err := uc.ComputeRecommendationTotal(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, total.Total)
		assert.Equal(t, 0, total.Count)
		m.edu.AssertNotCalled(t, "ListVerifiedByUserIDs", mock.Anything, mock.Anything)
	})

	t.Run("Should return not found for unknown user", func(t *testing.T) {
		uc, m := newScoreUsecase(cache.NewNoopScoreCache())
		m.users.On("GetByID", ctx, int64(9)).Return(nil, nil)

		_, err := uc.ComputeRecommendationTotal(ctx, 9)
		assert.Equal(t, 404, apperror.CodeOf(err))
	})
}

func TestScoreEntries(t *testing.T) {
	ctx := context.Background()

	t.Run("Should score a single education entry", func(t *testing.T) {
		uc, m := newScoreUsecase(nil)
		entry := verifiedEducation(10, 1)
		entry.DegreeType = "PhD"
		entry.GPA = ptr(3.95)
		m.edu.On("GetByID", ctx, int64(10)).Return(&entry, nil)

		score, err := uc.ScoreEducationEntry(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 80, score.Score) // 50 + 20 + 10
		assert.Equal(t, int64(10), score.EducationID)
	})

	t.Run("Should resolve an ongoing job to today", func(t *testing.T) {
		uc, m := newScoreUsecase(nil)
		job := verifiedJob(20, 1)
		job.StartDate = date(2024, time.December, 1)
		job.EndDate = nil
		job.IsCurrent = true
		m.work.On("GetByID", ctx, int64(20)).Return(&job, nil)

		score, err := uc.ScoreWorkEntry(ctx, 20)
		require.NoError(t, err)
		assert.Equal(t, 6, score.Breakdown.Months)
		assert.Equal(t, 25, score.Score)
	})

	t.Run("Should return not found for missing entries", func(t *testing.T) {
		uc, m := newScoreUsecase(nil)
		m.edu.On("GetByID", ctx, int64(1)).Return(nil, nil)
		m.work.On("GetByID", ctx, int64(2)).Return(nil, nil)

		_, err := uc.ScoreEducationEntry(ctx, 1)
		assert.Equal(t, 404, apperror.CodeOf(err))
		_, err = uc.ScoreWorkEntry(ctx, 2)
		assert.Equal(t, 404, apperror.CodeOf(err))
	})
}
