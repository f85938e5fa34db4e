package domain

import (
	"context"
	"time"
)

// Scores are transient: computed on demand from current verification state and never persisted.

type EducationBreakdown struct {
	UniversityBase int `json:"university_base"`
	DegreeBonus    int `json:"degree_bonus"`
	GPABonus       int `json:"gpa_bonus"`
}

type EducationScore struct {
	Total     int                `json:"total"`
	Breakdown EducationBreakdown `json:"breakdown"`
}

type WorkBreakdown struct {
	Base          int `json:"base"`
	Months        int `json:"months"`
	DurationBonus int `json:"duration_bonus"`
}

type WorkScore struct {
	Total     int           `json:"total"`
	Breakdown WorkBreakdown `json:"breakdown"`
}

// CompanyStreak is the tenure bonus earned at one employer.
type CompanyStreak struct {
	Company     string `json:"company"`
	TotalMonths int    `json:"total_months"`
	StreakBonus int    `json:"streak_bonus"`
}

type RecommendationBreakdown struct {
	Base   int     `json:"base"`
	Weight float64 `json:"weight"`
}

type RecommendationScore struct {
	Points    int                     `json:"points"`
	Breakdown RecommendationBreakdown `json:"breakdown"`
}

type EducationEntryScore struct {
	EducationID    int64              `json:"education_id"`
	UserID         int64              `json:"user_id"`
	DegreeType     string             `json:"degree_type"`
	CollegeID      string             `json:"college_id"`
	UniversityName string             `json:"university_name"`
	UniversityTier int                `json:"university_tier"`
	GPA            *float64           `json:"gpa,omitempty"`
	Score          int                `json:"score"`
	Breakdown      EducationBreakdown `json:"breakdown"`
}

type WorkEntryScore struct {
	WorkID         int64         `json:"work_id"`
	UserID         int64         `json:"user_id"`
	CompanyName    string        `json:"company_name"`
	Title          string        `json:"title"`
	EmploymentType string        `json:"employment_type"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        *time.Time    `json:"end_date,omitempty"`
	IsCurrent      bool          `json:"is_current"`
	Score          int           `json:"score"`
	Breakdown      WorkBreakdown `json:"breakdown"`
}

// AchievementScore is a user's verified education + work + streak total.
type AchievementScore struct {
	UserID              int64                 `json:"user_id"`
	Total               int                   `json:"total"`
	EducationTotal      int                   `json:"education_total"`
	WorkTotal           int                   `json:"work_total"`
	WorkStreakTotal     int                   `json:"work_streak_total"`
	EducationCount      int                   `json:"education_count"`
	WorkCount           int                   `json:"work_count"`
	EducationBreakdown  []EducationEntryScore `json:"education_breakdown"`
	WorkBreakdown       []WorkEntryScore      `json:"work_breakdown"`
	WorkStreakBreakdown []CompanyStreak       `json:"work_streak_breakdown"`
}

type RecommendationEntryScore struct {
	RecommendationID            int64                   `json:"recommendation_id"`
	RecommenderID               int64                   `json:"recommender_id"`
	RecType                     string                  `json:"rec_type"`
	RecommenderAchievementTotal int                     `json:"recommender_achievement_total"`
	Points                      int                     `json:"points"`
	Breakdown                   RecommendationBreakdown `json:"breakdown"`
	NoteTitle                   *string                 `json:"note_title,omitempty"`
}

// RecommendationTotal is the weighted sum of APPROVED recommendations a user received.
type RecommendationTotal struct {
	UserID    int64                      `json:"user_id"`
	Total     int                        `json:"total"`
	Count     int                        `json:"count"`
	Breakdown []RecommendationEntryScore `json:"breakdown"`
}

type ScoreUsecase interface {
	ScoreEducationEntry(ctx context.Context, educationID int64) (*EducationEntryScore, error)
	ScoreWorkEntry(ctx context.Context, workID int64) (*WorkEntryScore, error)
	ComputeAchievement(ctx context.Context, userID int64) (*AchievementScore, error)
	ComputeRecommendationTotal(ctx context.Context, userID int64) (*RecommendationTotal, error)
}

// ScoreKey identifies one cached score. Day pins scores that depend on "today"
// (ongoing positions) to the date they were computed for. Generation is read
// from the cache before the score is computed, so a result computed from state
// that was invalidated meanwhile lands under a retired generation.
type ScoreKey struct {
	Kind       string
	UserID     int64
	Day        string
	Generation int64
}

// Cached score kinds
const (
	ScoreKindAchievement    = "achievement"
	ScoreKindRecommendation = "recommendation"
)

// ScoreCache stores computed scores until the next verification change.
type ScoreCache interface {
	// Generation returns the current invalidation generation.
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, key ScoreKey, dst any) (bool, error)
	Set(ctx context.Context, key ScoreKey, value any) error
	// Invalidate drops every cached score.
	Invalidate(ctx context.Context) error
}
