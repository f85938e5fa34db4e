package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/apperror"
	"go-peerrank-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScoreUC struct {
	achievement    *domain.AchievementScore
	recommendation *domain.RecommendationTotal
	err            error
}

func (f fakeScoreUC) ScoreEducationEntry(context.Context, int64) (*domain.EducationEntryScore, error) {
	return nil, errors.New("not used")
}

func (f fakeScoreUC) ScoreWorkEntry(context.Context, int64) (*domain.WorkEntryScore, error) {
	return nil, errors.New("not used")
}

func (f fakeScoreUC) ComputeAchievement(context.Context, int64) (*domain.AchievementScore, error) {
	return f.achievement, f.err
}

func (f fakeScoreUC) ComputeRecommendationTotal(context.Context, int64) (*domain.RecommendationTotal, error) {
	return f.recommendation, f.err
}

type fakeLeaderboardUC struct {
	gotMode  domain.LeaderboardMode
	gotLimit int
	entries  []domain.LeaderboardEntry
}

func (f *fakeLeaderboardUC) Rank(_ context.Context, mode domain.LeaderboardMode, limit int) ([]domain.LeaderboardEntry, error) {
	f.gotMode, f.gotLimit = mode, limit
	return f.entries, nil
}

type fakeCache struct {
	invalidated int
}

func (f *fakeCache) Generation(context.Context) (int64, error) { return 0, nil }
func (f *fakeCache) Get(context.Context, domain.ScoreKey, any) (bool, error) { return false, nil }
func (f *fakeCache) Set(context.Context, domain.ScoreKey, any) error { return nil }
func (f *fakeCache) Invalidate(context.Context) error {
	f.invalidated++
	return nil
}

func useServices(t *testing.T, s *services) {
	t.Helper()
	previous := loadServices
	loadServices = func(context.Context, io.Writer) (*services, error) { return s, nil }
	t.Cleanup(func() { loadServices = previous })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	stdout, _, err := runStreams(t, args...)
	return stdout, err
}

func runStreams(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLeaderboardCommand(t *testing.T) {
	board := &fakeLeaderboardUC{entries: []domain.LeaderboardEntry{
		{
			User:                domain.LeaderboardUser{ID: 1, FullName: "Ada"},
			Rank:                1,
			AchievementScore:    95,
			RecommendationScore: 12,
			Percentiles:         &domain.LeaderboardPercentiles{Combined: 1},
		},
	}}
	useServices(t, &services{Leaderboard: board})

	out, err := run(t, "leaderboard", "achievements", "--limit", "5")
	require.NoError(t, err)
	assert.Equal(t, domain.LeaderboardAchievements, board.gotMode)
	assert.Equal(t, 5, board.gotLimit)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "1.0000")

	out, err = run(t, "leaderboard", "--json")
	require.NoError(t, err)
	assert.Equal(t, domain.LeaderboardCombined, board.gotMode)

	var decoded []domain.LeaderboardEntry
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Len(t, decoded, 1)
}

func TestAchievementCommand(t *testing.T) {
	useServices(t, &services{Score: fakeScoreUC{achievement: &domain.AchievementScore{
		UserID:          7,
		Total:           95,
		EducationTotal:  60,
		WorkTotal:       32,
		WorkStreakTotal: 3,
		WorkStreakBreakdown: []domain.CompanyStreak{
			{Company: "acme", TotalMonths: 14, StreakBonus: 3},
		},
	}}})

	out, err := run(t, "achievement", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "user 7 achievement 95")
	assert.Contains(t, out, "acme, 14 months: 3")
}

func TestAchievementCommandRejectsBadID(t *testing.T) {
	useServices(t, &services{Score: fakeScoreUC{}})

	_, err := run(t, "achievement", "seven")
	assert.ErrorContains(t, err, "invalid user id")
}

func TestRecommendationCommandPropagatesErrors(t *testing.T) {
	useServices(t, &services{Score: fakeScoreUC{err: apperror.NotFound("User not found")}})

	_, err := run(t, "recommendation", "9")
	assert.ErrorContains(t, err, "User not found")
}

func TestCacheFlushCommand(t *testing.T) {
	cache := &fakeCache{}
	closed := false
	useServices(t, &services{Cache: cache, Close: func() { closed = true }})

	out, err := run(t, "cache", "flush")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)
	assert.True(t, closed)
	assert.Contains(t, out, "score cache flushed")
}

func TestJSONOutputStaysParseableWhileLogging(t *testing.T) {
	board := &fakeLeaderboardUC{entries: []domain.LeaderboardEntry{{User: domain.LeaderboardUser{ID: 1}, Rank: 1}}}

	previousLoad, previousLog := loadServices, logger.Log
	loadServices = func(_ context.Context, logOut io.Writer) (*services, error) {
		logger.InitWriter(logOut, "info")
		logger.Log.Info("Redis connection established")
		return &services{Leaderboard: board}, nil
	}
	t.Cleanup(func() {
		loadServices = previousLoad
		logger.Log = previousLog
	})

	stdout, stderr, err := runStreams(t, "leaderboard", "--json")
	require.NoError(t, err)

	var decoded []domain.LeaderboardEntry
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Len(t, decoded, 1)
	assert.Contains(t, stderr, "Redis connection established")
}
