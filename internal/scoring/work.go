package scoring

import (
	"time"

	"go-peerrank-backend/internal/domain"
)

// MonthsBetween is a calendar-month delta: day of month is ignored, so Jan 30 to
// Feb 1 counts as one month. Negative spans and zero dates yield 0.
func MonthsBetween(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	m := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	return max(m, 0)
}

func WorkBasePoints(employmentType string) int {
	switch normalize(employmentType) {
	case domain.EmploymentInternship:
		return 10
	case domain.EmploymentFullTime:
		return 20
	case domain.EmploymentPartTime:
		return 12
	case domain.EmploymentContract:
		return 14
	}
	return 8
}

func DurationPoints(months int) int {
	switch {
	case months < 6:
		return 0
	case months < 12:
		return 5
	case months < 24:
		return 12
	case months < 36:
		return 20
	}
	return 30
}

// ScoreWork expects end already resolved to today for ongoing positions.
func ScoreWork(employmentType string, start, end time.Time) domain.WorkScore {
	months := MonthsBetween(start, end)
	b := domain.WorkBreakdown{
		Base:          WorkBasePoints(employmentType),
		Months:        months,
		DurationBonus: DurationPoints(months),
	}
	return domain.WorkScore{
		Total:     b.Base + b.DurationBonus,
		Breakdown: b,
	}
}

func ScoreWorkEntry(w domain.WorkExperience, today time.Time) domain.WorkEntryScore {
	s := ScoreWork(w.EmploymentType, w.StartDate, w.EffectiveEnd(today))
	return domain.WorkEntryScore{
		WorkID:         w.ID,
		UserID:         w.UserID,
		CompanyName:    w.CompanyName,
		Title:          w.Title,
		EmploymentType: w.EmploymentType,
		StartDate:      w.StartDate,
		EndDate:        w.EndDate,
		IsCurrent:      w.IsCurrent,
		Score:          s.Total,
		Breakdown:      s.Breakdown,
	}
}
