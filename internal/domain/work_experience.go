package domain

import (
	"context"
	"time"
)

// Employment types recognised by the work scorer
const (
	EmploymentInternship = "internship"
	EmploymentFullTime   = "full_time"
	EmploymentPartTime   = "part_time"
	EmploymentContract   = "contract"
)

type WorkExperience struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	CompanyName        string     `json:"company_name"`
	Title              string     `json:"title"`
	EmploymentType     string     `json:"employment_type"`
	IsCurrent          bool       `json:"is_current"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date,omitempty"` // nil while ongoing
	VerificationStatus string     `json:"verification_status"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
}

// IsOngoing reports whether the position's end should resolve to today.
func (w WorkExperience) IsOngoing() bool {
	return w.IsCurrent || w.EndDate == nil
}

// EffectiveEnd returns the end date used for scoring.
func (w WorkExperience) EffectiveEnd(today time.Time) time.Time {
	if w.IsOngoing() {
		return today
	}
	return *w.EndDate
}

type WorkExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*WorkExperience, error)
	// ListVerifiedByUserIDs returns VERIFIED entries for the given users ordered by id ascending.
	ListVerifiedByUserIDs(ctx context.Context, userIDs []int64) ([]WorkExperience, error)
	ListByStatus(ctx context.Context, status string) ([]WorkExperience, error)
	// UpdateVerificationStatus decides a PENDING record. It reports false when
	// the record was no longer pending.
	UpdateVerificationStatus(ctx context.Context, id int64, status string, verifiedAt *time.Time) (bool, error)
}
