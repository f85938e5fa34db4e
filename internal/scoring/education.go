// Package scoring holds the point tables and ranking rules. Every function is
// pure: callers load records and supply "today".
package scoring

import (
	"strings"

	"go-peerrank-backend/internal/domain"
)

// UniversityBaseScore returns the base points for a university tier. Tiers
// outside 1..5 score nothing.
func UniversityBaseScore(tier int) int {
	switch tier {
	case 1:
		return 60
	case 2:
		return 50
	case 3:
		return 40
	case 4:
		return 30
	case 5:
		return 20
	}
	return 0
}

func DegreeBonus(degreeType string, isCompleted bool) int {
	switch normalize(degreeType) {
	case domain.DegreeMaster:
		return 10
	case domain.DegreePhD:
		if isCompleted {
			return 20
		}
		return 10
	}
	return 0
}

// GPABonus thresholds are inclusive lower bounds checked highest first.
func GPABonus(gpa *float64) int {
	if gpa == nil {
		return 0
	}
	g := *gpa
	switch {
	case g >= 3.9:
		return 10
	case g >= 3.7:
		return 8
	case g >= 3.5:
		return 6
	case g >= 3.3:
		return 4
	case g >= 3.0:
		return 2
	}
	return 0
}

func ScoreEducation(tier int, degreeType string, isCompleted bool, gpa *float64) domain.EducationScore {
	b := domain.EducationBreakdown{
		UniversityBase: UniversityBaseScore(tier),
		DegreeBonus:    DegreeBonus(degreeType, isCompleted),
		GPABonus:       GPABonus(gpa),
	}
	return domain.EducationScore{
		Total:     b.UniversityBase + b.DegreeBonus + b.GPABonus,
		Breakdown: b,
	}
}

// ScoreEducationEntry scores e regardless of its verification status.
func ScoreEducationEntry(e domain.EducationEntry) domain.EducationEntryScore {
	s := ScoreEducation(e.UniversityTier, e.DegreeType, e.IsCompleted, e.GPA)
	return domain.EducationEntryScore{
		EducationID:    e.ID,
		UserID:         e.UserID,
		DegreeType:     e.DegreeType,
		CollegeID:      e.CollegeID,
		UniversityName: e.UniversityName,
		UniversityTier: e.UniversityTier,
		GPA:            e.GPA,
		Score:          s.Total,
		Breakdown:      s.Breakdown,
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
