package domain

import (
	"context"
	"time"
)

// Verification status of education and work entries
const (
	VerificationStatusPending  = "PENDING"
	VerificationStatusVerified = "VERIFIED"
	VerificationStatusRejected = "REJECTED"
)

// Decision actions accepted from admins and recommenders
const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
)

// DecisionRequest is an admin decision on a pending education or work entry.
type DecisionRequest struct {
	Action string `json:"action" validate:"required,decision_action"`
	Notes  string `json:"notes" validate:"max=500"`
}

// PendingVerifications groups everything waiting for an admin decision.
type PendingVerifications struct {
	Education []EducationEntry `json:"education"`
	Work      []WorkExperience `json:"work"`
}

type VerificationUsecase interface {
	ListPending(ctx context.Context) (*PendingVerifications, error)
	DecideEducation(ctx context.Context, educationID int64, req DecisionRequest) (*EducationEntry, error)
	DecideWork(ctx context.Context, workID int64, req DecisionRequest) (*WorkExperience, error)
}

// StatusForAction maps a decision action to the resulting verification status.
func StatusForAction(action string) (string, bool) {
	switch action {
	case ActionApprove:
		return VerificationStatusVerified, true
	case ActionReject:
		return VerificationStatusRejected, true
	}
	return "", false
}

// VerifiedAtFor returns the verified_at stamp to store for a status change.
func VerifiedAtFor(status string, now time.Time) *time.Time {
	if status != VerificationStatusVerified {
		return nil
	}
	return &now
}
