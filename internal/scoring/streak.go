package scoring

import (
	"sort"
	"time"

	"go-peerrank-backend/internal/domain"
)

const (
	unknownCompany      = "unknown"
	streakPointsPerYear = 3
	monthsPerStreakYear = 12
)

// StreakBonus awards 3 points per completed year; partial years are dropped.
func StreakBonus(totalMonths int) int {
	if totalMonths <= 0 {
		return 0
	}
	return totalMonths / monthsPerStreakYear * streakPointsPerYear
}

// ComputeStreaks sums tenure per employer across entries and converts it to
// bonus points. Callers pass only VERIFIED entries. The breakdown is ordered
// by descending bonus; equal bonuses keep the order companies were first seen.
func ComputeStreaks(entries []domain.WorkExperience, today time.Time) (int, []domain.CompanyStreak) {
	breakdown := []domain.CompanyStreak{}
	if len(entries) == 0 {
		return 0, breakdown
	}

	index := make(map[string]int)
	for _, w := range entries {
		if w.StartDate.IsZero() {
			continue
		}

		company := normalize(w.CompanyName)
		if company == "" {
			company = unknownCompany
		}

		i, ok := index[company]
		if !ok {
			i = len(breakdown)
			index[company] = i
			breakdown = append(breakdown, domain.CompanyStreak{Company: company})
		}
		breakdown[i].TotalMonths += MonthsBetween(w.StartDate, w.EffectiveEnd(today))
	}

	total := 0
	for i := range breakdown {
		breakdown[i].StreakBonus = StreakBonus(breakdown[i].TotalMonths)
		total += breakdown[i].StreakBonus
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].StreakBonus > breakdown[j].StreakBonus
	})
	return total, breakdown
}
