package domain

import "context"

type LeaderboardMode string

const (
	LeaderboardCombined        LeaderboardMode = "combined"
	LeaderboardAchievements    LeaderboardMode = "achievements"
	LeaderboardRecommendations LeaderboardMode = "recommendations"
)

// Weights blending the two percentile ranks into the combined score
const (
	CombinedAchievementWeight    = 0.6
	CombinedRecommendationWeight = 0.4
)

type LeaderboardUser struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Username *string `json:"username,omitempty"`
}

// UserTotals is one row of ranker input.
type UserTotals struct {
	User                LeaderboardUser
	AchievementTotal    int
	RecommendationTotal int
}

type LeaderboardPercentiles struct {
	Achievement    float64 `json:"achievement"`
	Recommendation float64 `json:"recommendation"`
	Combined       float64 `json:"combined"`
}

type LeaderboardEntry struct {
	User                LeaderboardUser         `json:"user"`
	Rank                int                     `json:"rank"`
	AchievementScore    int                     `json:"achievement_score"`
	RecommendationScore int                     `json:"recommendation_score"`
	Percentiles         *LeaderboardPercentiles `json:"percentiles,omitempty"` // combined mode only
}

type LeaderboardUsecase interface {
	Rank(ctx context.Context, mode LeaderboardMode, limit int) ([]LeaderboardEntry, error)
}
