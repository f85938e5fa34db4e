package scoring

import "go-peerrank-backend/internal/domain"

// AchievementTotalFunc looks up a recommender's achievement total. It must not
// include recommendation points; the aggregation stops after this one hop.
type AchievementTotalFunc func(recommenderID int64) (int, error)

// ComputeRecommendationTotal scores the APPROVED recommendations userID
// received, weighting each by the recommender's achievement total at call time.
func ComputeRecommendationTotal(userID int64, recs []domain.Recommendation, achievementOf AchievementTotalFunc) (*domain.RecommendationTotal, error) {
	t := &domain.RecommendationTotal{
		UserID:    userID,
		Breakdown: []domain.RecommendationEntryScore{},
	}

	for _, r := range recs {
		if r.RequesterID != userID || r.Status != domain.RecommendationStatusApproved {
			continue
		}

		recommenderTotal, err := achievementOf(r.RecommenderID)
		if err != nil {
			return nil, err
		}

		scored := ScoreRecommendation(r.RecType, recommenderTotal)
		t.Total += scored.Points
		t.Breakdown = append(t.Breakdown, domain.RecommendationEntryScore{
			RecommendationID:            r.ID,
			RecommenderID:               r.RecommenderID,
			RecType:                     r.RecType,
			RecommenderAchievementTotal: recommenderTotal,
			Points:                      scored.Points,
			Breakdown:                   scored.Breakdown,
			NoteTitle:                   r.NoteTitle,
		})
	}

	t.Count = len(t.Breakdown)
	return t, nil
}

// TotalsFrom adapts a precomputed map into an AchievementTotalFunc. Missing ids score 0.
func TotalsFrom(totals map[int64]int) AchievementTotalFunc {
	return func(id int64) (int, error) {
		return totals[id], nil
	}
}
