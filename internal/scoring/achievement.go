package scoring

import (
	"time"

	"go-peerrank-backend/internal/domain"
)

// ComputeAchievement totals a user's verified education, work and work-streak
// points. Entries that are not VERIFIED or belong to another user are ignored,
// so callers may pass unfiltered slices. Recommendations never feed into this
// total, which is what keeps recommendation scoring one hop deep.
func ComputeAchievement(userID int64, education []domain.EducationEntry, work []domain.WorkExperience, today time.Time) *domain.AchievementScore {
	a := &domain.AchievementScore{
		UserID:              userID,
		EducationBreakdown:  []domain.EducationEntryScore{},
		WorkBreakdown:       []domain.WorkEntryScore{},
		WorkStreakBreakdown: []domain.CompanyStreak{},
	}

	for _, e := range education {
		if e.UserID != userID || e.VerificationStatus != domain.VerificationStatusVerified {
			continue
		}
		scored := ScoreEducationEntry(e)
		a.EducationTotal += scored.Score
		a.EducationBreakdown = append(a.EducationBreakdown, scored)
	}

	verifiedWork := make([]domain.WorkExperience, 0, len(work))
	for _, w := range work {
		if w.UserID != userID || w.VerificationStatus != domain.VerificationStatusVerified {
			continue
		}
		verifiedWork = append(verifiedWork, w)
		scored := ScoreWorkEntry(w, today)
		a.WorkTotal += scored.Score
		a.WorkBreakdown = append(a.WorkBreakdown, scored)
	}

	a.WorkStreakTotal, a.WorkStreakBreakdown = ComputeStreaks(verifiedWork, today)

	a.EducationCount = len(a.EducationBreakdown)
	a.WorkCount = len(a.WorkBreakdown)
	a.Total = a.EducationTotal + a.WorkTotal + a.WorkStreakTotal
	return a
}

// AchievementTotals computes the achievement total of every user in userIDs
// from bulk-loaded entries. Users without entries map to 0.
func AchievementTotals(userIDs []int64, education []domain.EducationEntry, work []domain.WorkExperience, today time.Time) map[int64]int {
	eduByUser := make(map[int64][]domain.EducationEntry)
	for _, e := range education {
		eduByUser[e.UserID] = append(eduByUser[e.UserID], e)
	}
	workByUser := make(map[int64][]domain.WorkExperience)
	for _, w := range work {
		workByUser[w.UserID] = append(workByUser[w.UserID], w)
	}

	totals := make(map[int64]int, len(userIDs))
	for _, id := range userIDs {
		if _, done := totals[id]; done {
			continue
		}
		totals[id] = ComputeAchievement(id, eduByUser[id], workByUser[id], today).Total
	}
	return totals
}
