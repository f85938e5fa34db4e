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

type verificationUsecase struct {
	educationRepo domain.EducationRepository
	workRepo      domain.WorkExperienceRepository
	cache         domain.ScoreCache
	validate      *validator.Validate
	clock         Clock
}

func NewVerificationUsecase(
	educationRepo domain.EducationRepository,
	workRepo domain.WorkExperienceRepository,
	cache domain.ScoreCache,
	clock Clock,
) domain.VerificationUsecase {
	if clock == nil {
		clock = SystemClock
	}
	return &verificationUsecase{
		educationRepo: educationRepo,
		workRepo:      workRepo,
		cache:         cache,
		validate:      validation.New(),
		clock:         clock,
	}
}

func (uc *verificationUsecase) ListPending(ctx context.Context) (*domain.PendingVerifications, error) {
	education, err := uc.educationRepo.ListByStatus(ctx, domain.VerificationStatusPending)
	if err != nil {
		return nil, err
	}
	work, err := uc.workRepo.ListByStatus(ctx, domain.VerificationStatusPending)
	if err != nil {
		return nil, err
	}
	if education == nil {
		education = []domain.EducationEntry{}
	}
	if work == nil {
		work = []domain.WorkExperience{}
	}
	return &domain.PendingVerifications{Education: education, Work: work}, nil
}

func (uc *verificationUsecase) DecideEducation(ctx context.Context, educationID int64, req domain.DecisionRequest) (*domain.EducationEntry, error) {
	// 1. Validate action
	status, err := uc.statusFor(req)
	if err != nil {
		return nil, err
	}

	// 2. Load and check the entry is still pending
	entry, err := uc.educationRepo.GetByID(ctx, educationID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Education entry not found")
	}
	if entry.VerificationStatus != domain.VerificationStatusPending {
		return nil, apperror.BadRequest(fmt.Sprintf("Education entry already %s", strings.ToLower(entry.VerificationStatus)))
	}

	// 3. Update status
	verifiedAt := domain.VerifiedAtFor(status, uc.clock())
	updated, err := uc.educationRepo.UpdateVerificationStatus(ctx, educationID, status, verifiedAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.Conflict("Education entry was already decided")
	}
	entry.VerificationStatus = status
	entry.VerifiedAt = verifiedAt

	uc.afterDecision(ctx, "education", educationID, status, req.Notes)
	return entry, nil
}

func (uc *verificationUsecase) DecideWork(ctx context.Context, workID int64, req domain.DecisionRequest) (*domain.WorkExperience, error) {
	status, err := uc.statusFor(req)
	if err != nil {
		return nil, err
	}

	work, err := uc.workRepo.GetByID(ctx, workID)
	if err != nil {
		return nil, err
	}
	if work == nil {
		return nil, apperror.NotFound("Work experience not found")
	}
	if work.VerificationStatus != domain.VerificationStatusPending {
		return nil, apperror.BadRequest(fmt.Sprintf("Work experience already %s", strings.ToLower(work.VerificationStatus)))
	}

	verifiedAt := domain.VerifiedAtFor(status, uc.clock())
	updated, err := uc.workRepo.UpdateVerificationStatus(ctx, workID, status, verifiedAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperror.Conflict("Work experience was already decided")
	}
	work.VerificationStatus = status
	work.VerifiedAt = verifiedAt

	uc.afterDecision(ctx, "work", workID, status, req.Notes)
	return work, nil
}

func (uc *verificationUsecase) statusFor(req domain.DecisionRequest) (string, error) {
	if err := uc.validate.Struct(req); err != nil {
		return "", apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	status, ok := domain.StatusForAction(strings.ToUpper(strings.TrimSpace(req.Action)))
	if !ok {
		return "", apperror.BadRequest("invalid action: must be APPROVE or REJECT")
	}
	return status, nil
}

func (uc *verificationUsecase) afterDecision(ctx context.Context, subject string, id int64, status, notes string) {
	invalidateScores(ctx, uc.cache, subject+" verification")
	metrics.VerificationDecisions.WithLabelValues(subject, status).Inc()
	logger.Log.Info("Verification decided",
		"subject", subject,
		"id", id,
		"status", status,
		"notes", notes,
	)
}
