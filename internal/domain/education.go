package domain

import (
	"context"
	"time"
)

// Degree types recognised by the education scorer
const (
	DegreeBachelor = "bachelor"
	DegreeMaster   = "master"
	DegreePhD      = "phd"
)

type EducationEntry struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	DegreeType         string     `json:"degree_type"`
	UniversityName     string     `json:"university_name"`
	UniversityTier     int        `json:"university_tier"` // 1 (top) to 5
	GPA                *float64   `json:"gpa,omitempty"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	EndDate            *time.Time `json:"end_date,omitempty"`
	IsCompleted        bool       `json:"is_completed"`
	CollegeID          string     `json:"college_id"`
	VerificationStatus string     `json:"verification_status"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
}

type EducationRepository interface {
	GetByID(ctx context.Context, id int64) (*EducationEntry, error)
	// ListVerifiedByUserIDs returns VERIFIED entries for the given users ordered by id ascending.
	ListVerifiedByUserIDs(ctx context.Context, userIDs []int64) ([]EducationEntry, error)
	ListByStatus(ctx context.Context, status string) ([]EducationEntry, error)
	// UpdateVerificationStatus decides a PENDING record. It reports false when
	// the record was no longer pending.
	UpdateVerificationStatus(ctx context.Context, id int64, status string, verifiedAt *time.Time) (bool, error)
}
