package scoring

import (
	"testing"

	"go-peerrank-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentRank(t *testing.T) {
	got := PercentRank([]int{100, 100, 50})
	assert.Equal(t, map[int]float64{100: 1.0, 50: 0.5}, got)

	assert.Equal(t, map[int]float64{7: 1.0}, PercentRank([]int{7}))
	assert.Equal(t, map[int]float64{0: 1.0}, PercentRank([]int{0}))
	assert.Empty(t, PercentRank(nil))

	// ranks 1, 2, 4 in a cohort of 4
	got = PercentRank([]int{30, 20, 20, 10})
	assert.InDelta(t, 1.0, got[30], 1e-9)
	assert.InDelta(t, 2.0/3.0, got[20], 1e-9)
	assert.InDelta(t, 0.0, got[10], 1e-9)
}

func TestParseLeaderboardMode(t *testing.T) {
	mode, err := ParseLeaderboardMode(" Combined ")
	require.NoError(t, err)
	assert.Equal(t, domain.LeaderboardCombined, mode)

	_, err = ParseLeaderboardMode("weekly")
	assert.Error(t, err)
}

func row(id int64, achievement, recommendation int) domain.UserTotals {
	return domain.UserTotals{
		User:                domain.LeaderboardUser{ID: id},
		AchievementTotal:    achievement,
		RecommendationTotal: recommendation,
	}
}

func ids(entries []domain.LeaderboardEntry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.User.ID
	}
	return out
}

func TestRankLeaderboardCombined(t *testing.T) {
	rows := []domain.UserTotals{
		row(1, 100, 0),
		row(2, 50, 30),
		row(3, 100, 30),
		row(4, 10, 0),
	}

	got, err := RankLeaderboard(rows, domain.LeaderboardCombined, 0)
	require.NoError(t, err)

	// pA: 100->1, 50->1/3, 10->0 ; pR: 30->1, 0->1/3
	assert.Equal(t, []int64{3, 1, 2, 4}, ids(got))
	assert.InDelta(t, 1.0, got[0].Percentiles.Combined, 1e-9)
	assert.InDelta(t, 0.6+0.4/3, got[1].Percentiles.Combined, 1e-9)
	for i, e := range got {
		assert.Equal(t, i+1, e.Rank)
	}
}

func TestRankLeaderboardCombinedTieBreaks(t *testing.T) {
	rows := []domain.UserTotals{
		row(1, 0, 10),
		row(2, 10, 0),
		row(3, 10, 10),
	}
	got, err := RankLeaderboard(rows, domain.LeaderboardCombined, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, ids(got))

	identical := []domain.UserTotals{row(9, 5, 5), row(4, 5, 5)}
	got, err = RankLeaderboard(identical, domain.LeaderboardCombined, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 9}, ids(got))
}

func TestRankLeaderboardSingleUser(t *testing.T) {
	got, err := RankLeaderboard([]domain.UserTotals{row(1, 0, 0)}, domain.LeaderboardCombined, 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].Percentiles.Achievement)
	assert.Equal(t, 1.0, got[0].Percentiles.Recommendation)
	assert.Equal(t, 1, got[0].Rank)
}

func TestRankLeaderboardSingleMetric(t *testing.T) {
	rows := []domain.UserTotals{
		row(5, 40, 1),
		row(2, 90, 3),
		row(3, 40, 9),
		row(1, 10, 9),
	}

	got, err := RankLeaderboard(rows, domain.LeaderboardAchievements, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5}, ids(got))
	assert.Nil(t, got[0].Percentiles)
	assert.Equal(t, 3, got[2].Rank)

	got, err = RankLeaderboard(rows, domain.LeaderboardRecommendations, 0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2, 5}, ids(got))

	_, err = RankLeaderboard(rows, domain.LeaderboardMode("weekly"), 0)
	assert.Error(t, err)
}
