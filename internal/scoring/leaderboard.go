package scoring

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"go-peerrank-backend/internal/domain"
)

// PercentRank maps each distinct value to its percentile among all values.
// A value's rank is the 1-based position of its first occurrence when sorted
// descending, and percentile = (n-rank)/(n-1) with n counting every value,
// duplicates included. A single value gets 1.0.
func PercentRank(values []int) map[int]float64 {
	out := make(map[int]float64)
	n := len(values)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[values[0]] = 1.0
		return out
	}

	sorted := slices.Clone(values)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	for i, v := range sorted {
		if _, seen := out[v]; seen {
			continue
		}
		rank := i + 1
		out[v] = float64(n-rank) / float64(n-1)
	}
	return out
}

// ParseLeaderboardMode accepts the mode names case-insensitively.
func ParseLeaderboardMode(s string) (domain.LeaderboardMode, error) {
	mode := domain.LeaderboardMode(strings.ToLower(strings.TrimSpace(s)))
	switch mode {
	case domain.LeaderboardCombined, domain.LeaderboardAchievements, domain.LeaderboardRecommendations:
		return mode, nil
	}
	return "", fmt.Errorf("unknown leaderboard mode %q", s)
}

// RankLeaderboard orders rows for mode, truncates to limit (limit <= 0 keeps
// everything) and assigns 1-based ranks. Remaining ties go to the lower user id.
func RankLeaderboard(rows []domain.UserTotals, mode domain.LeaderboardMode, limit int) ([]domain.LeaderboardEntry, error) {
	entries := make([]domain.LeaderboardEntry, len(rows))
	for i, r := range rows {
		entries[i] = domain.LeaderboardEntry{
			User:                r.User,
			AchievementScore:    r.AchievementTotal,
			RecommendationScore: r.RecommendationTotal,
		}
	}

	var less func(a, b domain.LeaderboardEntry) bool
	switch mode {
	case domain.LeaderboardCombined:
		applyPercentiles(entries)
		less = combinedBefore
	case domain.LeaderboardAchievements:
		less = func(a, b domain.LeaderboardEntry) bool {
			if a.AchievementScore != b.AchievementScore {
				return a.AchievementScore > b.AchievementScore
			}
			return a.User.ID < b.User.ID
		}
	case domain.LeaderboardRecommendations:
		less = func(a, b domain.LeaderboardEntry) bool {
			if a.RecommendationScore != b.RecommendationScore {
				return a.RecommendationScore > b.RecommendationScore
			}
			return a.User.ID < b.User.ID
		}
	default:
		return nil, fmt.Errorf("unknown leaderboard mode %q", mode)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func applyPercentiles(entries []domain.LeaderboardEntry) {
	achievements := make([]int, len(entries))
	recommendations := make([]int, len(entries))
	for i, e := range entries {
		achievements[i] = e.AchievementScore
		recommendations[i] = e.RecommendationScore
	}

	pA := PercentRank(achievements)
	pR := PercentRank(recommendations)

	for i := range entries {
		a := pA[entries[i].AchievementScore]
		r := pR[entries[i].RecommendationScore]
		entries[i].Percentiles = &domain.LeaderboardPercentiles{
			Achievement:    a,
			Recommendation: r,
			Combined:       domain.CombinedAchievementWeight*a + domain.CombinedRecommendationWeight*r,
		}
	}
}

// combinedBefore compares (combined, pA, pR, achievement total) descending.
func combinedBefore(a, b domain.LeaderboardEntry) bool {
	pa, pb := a.Percentiles, b.Percentiles
	if pa.Combined != pb.Combined {
		return pa.Combined > pb.Combined
	}
	if pa.Achievement != pb.Achievement {
		return pa.Achievement > pb.Achievement
	}
	if pa.Recommendation != pb.Recommendation {
		return pa.Recommendation > pb.Recommendation
	}
	if a.AchievementScore != b.AchievementScore {
		return a.AchievementScore > b.AchievementScore
	}
	return a.User.ID < b.User.ID
}
