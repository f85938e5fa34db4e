package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/pkg/apperror"
	"go-peerrank-backend/pkg/logger"
	"go-peerrank-backend/pkg/metrics"
	"go-peerrank-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type recommendationUsecase struct {
	recommendationRepo domain.RecommendationRepository
	cache              domain.ScoreCache
	validate           *validator.Validate
	clock              Clock
}

func NewRecommendationUsecase(recommendationRepo domain.RecommendationRepository, cache domain.ScoreCache, clock Clock) domain.RecommendationUsecase {
	if clock == nil {
		clock = SystemClock
	}
	return &recommendationUsecase{
		recommendationRepo: recommendationRepo,
		cache:              cache,
		validate:           validation.New(),
		clock:              clock,
	}
}

// Decide records the recommender's answer. Only the named recommender may decide
// and only while the request is pending.
func (uc *recommendationUsecase) Decide(ctx context.Context, recommendationID int64, decision domain.RecommendationDecision) (*domain.Recommendation, error) {
	userID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	if err := uc.validate.Struct(decision); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	rec, err := uc.recommendationRepo.GetByID(ctx, recommendationID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperror.NotFound("Recommendation not found")
	}
	if rec.RecommenderID != userID {
		return nil, apperror.Forbidden("Only the recommender can decide this recommendation")
	}
	if rec.Status != domain.RecommendationStatusPending {
		return nil, apperror.BadRequest(fmt.Sprintf("Recommendation already %s", strings.ToLower(rec.Status)))
	}

	now := uc.clock()
	rec.DecidedAt = &now
	if strings.EqualFold(strings.TrimSpace(decision.Action), domain.ActionApprove) {
		rec.Status = domain.RecommendationStatusApproved
		rec.NoteTitle = optionalText(decision.NoteTitle)
		rec.NoteBody = optionalText(decision.NoteBody)
	} else {
		rec.Status = domain.RecommendationStatusRejected
		rec.NoteTitle = nil
		rec.NoteBody = nil
	}

	updated, err := uc.recommendationRepo.Decide(ctx, rec)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.Conflict("Recommendation was already decided")
	}

	invalidateScores(ctx, uc.cache, "recommendation decision")
	metrics.VerificationDecisions.WithLabelValues("recommendation", rec.Status).Inc()
	logger.Log.Info("Recommendation decided",
		"recommendation_id", rec.ID,
		"recommender_id", userID,
		"requester_id", rec.RequesterID,
		"status", rec.Status,
	)
	return rec, nil
}

func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
