package domain

import (
	"context"
	"time"
)

// Recommendation statuses
const (
	RecommendationStatusPending  = "PENDING"
	RecommendationStatusApproved = "APPROVED"
	RecommendationStatusRejected = "REJECTED"
)

// Recommendation types with dedicated base points
const (
	RecTypeWork     = "work rec"
	RecTypeAcademic = "academic"
	RecTypeProject  = "project"
)

type Recommendation struct {
	ID            int64      `json:"id"`
	RequesterID   int64      `json:"requester_id"`   // the person being recommended
	RecommenderID int64      `json:"recommender_id"` // the person vouching
	RecType       string     `json:"rec_type"`
	Reason        string     `json:"reason"`
	NoteTitle     *string    `json:"note_title,omitempty"`
	NoteBody      *string    `json:"note_body,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
}

// RecommendationDecision is the recommender's answer to a pending request.
// The note is only stored when approving.
type RecommendationDecision struct {
	Action    string `json:"action" validate:"required,decision_action"`
	NoteTitle string `json:"note_title" validate:"max=120,no_emoji"`
	NoteBody  string `json:"note_body" validate:"max=4000"`
}

type RecommendationRepository interface {
	GetByID(ctx context.Context, id int64) (*Recommendation, error)
	// ListApprovedByRequesterIDs returns APPROVED recommendations received by the
	// given users ordered by id ascending.
	ListApprovedByRequesterIDs(ctx context.Context, requesterIDs []int64) ([]Recommendation, error)
	// Decide persists a decision on a PENDING recommendation. It reports false
	// when the row was no longer pending.
	Decide(ctx context.Context, rec *Recommendation) (bool, error)
}

type RecommendationUsecase interface {
	Decide(ctx context.Context, recommendationID int64, decision RecommendationDecision) (*Recommendation, error)
}
