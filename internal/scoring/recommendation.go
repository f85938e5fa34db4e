package scoring

import (
	"math"

	"go-peerrank-backend/internal/domain"
)

func RecommendationBasePoints(recType string) int {
	switch normalize(recType) {
	case domain.RecTypeWork:
		return 10
	case domain.RecTypeAcademic:
		return 8
	case domain.RecTypeProject:
		return 6
	}
	return 5
}

// RecommendationWeight scales a recommendation by how accomplished the recommender is.
func RecommendationWeight(achievementTotal int) float64 {
	switch {
	case achievementTotal < 50:
		return 1.0
	case achievementTotal < 100:
		return 1.2
	case achievementTotal < 200:
		return 1.5
	}
	return 2.0
}

// ScoreRecommendation rounds half to even, so 5 x 1.5 = 7.5 scores 8 and
// 6.5 would score 6.
func ScoreRecommendation(recType string, recommenderAchievementTotal int) domain.RecommendationScore {
	b := domain.RecommendationBreakdown{
		Base:   RecommendationBasePoints(recType),
		Weight: RecommendationWeight(recommenderAchievementTotal),
	}
	return domain.RecommendationScore{
		Points:    int(math.RoundToEven(float64(b.Base) * b.Weight)),
		Breakdown: b,
	}
}
