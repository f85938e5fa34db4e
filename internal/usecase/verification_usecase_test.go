package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/internal/usecase"
	"go-peerrank-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingEducation(id int64) *domain.EducationEntry {
	e := verifiedEducation(id, 1)
	e.VerificationStatus = domain.VerificationStatusPending
	return &e
}

func TestDecideEducation(t *testing.T) {
	ctx := context.Background()

	t.Run("Should verify, stamp verified_at and invalidate scores", func(t *testing.T) {
		edu, work, scoreCache := new(MockEducationRepo), new(MockWorkRepo), new(MockScoreCache)
		uc := usecase.NewVerificationUsecase(edu, work, scoreCache, fixedClock)

		edu.On("GetByID", ctx, int64(10)).Return(pendingEducation(10), nil)
		edu.On("UpdateVerificationStatus", ctx, int64(10), domain.VerificationStatusVerified, mock.MatchedBy(func(at *time.Time) bool {
			return at != nil && at.Equal(today)
		})).Return(true, nil)
		scoreCache.On("Invalidate", ctx).Return(nil).Once()

		entry, err := uc.DecideEducation(ctx, 10, domain.DecisionRequest{Action: "approve", Notes: "transcript checked"})
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationStatusVerified, entry.VerificationStatus)
		require.NotNil(t, entry.VerifiedAt)
		edu.AssertExpectations(t)
		scoreCache.AssertExpectations(t)
	})

	t.Run("Should reject and clear verified_at", func(t *testing.T) {
		edu, work, scoreCache := new(MockEducationRepo), new(MockWorkRepo), new(MockScoreCache)
		uc := usecase.NewVerificationUsecase(edu, work, scoreCache, fixedClock)

		edu.On("GetByID", ctx, int64(10)).Return(pendingEducation(10), nil)
		edu.On("UpdateVerificationStatus", ctx, int64(10), domain.VerificationStatusRejected, (*time.Time)(nil)).Return(true, nil)
		scoreCache.On("Invalidate", ctx).Return(nil)

		entry, err := uc.DecideEducation(ctx, 10, domain.DecisionRequest{Action: "REJECT"})
		require.NoError(t, err)
		assert.Equal(t, domain.VerificationStatusRejected, entry.VerificationStatus)
		assert.Nil(t, entry.VerifiedAt)
	})

	t.Run("Should refuse entries that are no longer pending", func(t *testing.T) {
		edu, work, scoreCache := new(MockEducationRepo), new(MockWorkRepo), new(MockScoreCache)
		uc := usecase.NewVerificationUsecase(edu, work, scoreCache, fixedClock)

		decided := verifiedEducation(10, 1)
		edu.On("GetByID", ctx, int64(10)).Return(&decided, nil)

		_, err := uc.DecideEducation(ctx, 10, domain.DecisionRequest{Action: "APPROVE"})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.CodeOf(err))
		assert.Contains(t, err.Error(), "already verified")
		edu.AssertNotCalled(t, "UpdateVerificationStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		scoreCache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("Should validate action before touching the repository", func(t *testing.T) {
		edu, work, scoreCache := new(MockEducationRepo), new(MockWorkRepo), new(MockScoreCache)
		uc := usecase.NewVerificationUsecase(edu, work, scoreCache, fixedClock)

		_, err := uc.DecideEducation(ctx, 10, domain.DecisionRequest{Action: "MAYBE"})
		require.Error(t, err)
		assert.Equal(t, 400, apperror.CodeOf(err))
		assert.Contains(t, err.Error(), "must be APPROVE or REJECT")
		edu.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Should return not found for missing entries", func(t *testing.T) {
		edu, work, scoreCache := new(MockEducationRepo), new(MockWorkRepo), new(MockScoreCache)
		uc := usecase.NewVerificationUsecase(edu, work, scoreCache, fixedClock)
		edu.On("GetByID", ctx, int64(99)).Return(nil, nil)

		_, err := uc.DecideEducation(ctx, 99, domain.DecisionRequest{Action: "APPROVE"})
		assert.Equal(t, 404, apperror.CodeOf(err))
	})

	t.Run("Should conflict when another decision lands first", func(t *testing.T) {
		edu, work, scoreCache := new(MockEducationRepo), new(MockWorkRepo), new(MockScoreCache)
		uc := usecase.NewVerificationUsecase(edu, work, scoreCache, fixedClock)
		edu.On("GetByID", ctx, int64(10)).Return(pendingEducation(10), nil)
		edu.On("UpdateVerificationStatus", ctx, int64(10), domain.VerificationStatusRejected, (*time.Time)(nil)).Return(false, nil)

		_, err := uc.DecideEducation(ctx, 10, domain.DecisionRequest{Action: "REJECT"})
		require.Error(t, err)
		assert.Equal(t, 409, apperror.CodeOf(err))
		scoreCache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})
}

func TestDecideWork(t *testing.T) {
	ctx := context.Background()
	edu, work, scoreCache := new(MockEducationRepo), new(MockWorkRepo), new(MockScoreCache)
	uc := usecase.NewVerificationUsecase(edu, work, scoreCache, fixedClock)

	job := verifiedJob(20, 1)
	job.VerificationStatus = domain.VerificationStatusPending
	work.On("GetByID", ctx, int64(20)).Return(&job, nil)
	work.On("UpdateVerificationStatus", ctx, int64(20), domain.VerificationStatusVerified, mock.Anything).Return(true, nil)
	scoreCache.On("Invalidate", ctx).Return(nil)

	updated, err := uc.DecideWork(ctx, 20, domain.DecisionRequest{Action: "APPROVE"})
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationStatusVerified, updated.VerificationStatus)
	scoreCache.AssertCalled(t, "Invalidate", ctx)
}

func TestDecideWorkConflict(t *testing.T) {
	ctx := context.Background()
	edu, work, scoreCache := new(MockEducationRepo), new(MockWorkRepo), new(MockScoreCache)
	uc := usecase.NewVerificationUsecase(edu, work, scoreCache, fixedClock)

	job := verifiedJob(20, 1)
	job.VerificationStatus = domain.VerificationStatusPending
	work.On("GetByID", ctx, int64(20)).Return(&job, nil)
	work.On("UpdateVerificationStatus", ctx, int64(20), domain.VerificationStatusVerified, mock.Anything).Return(false, nil)

	_, err := uc.DecideWork(ctx, 20, domain.DecisionRequest{Action: "APPROVE"})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "already decided")
	scoreCache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	edu, work := new(MockEducationRepo), new(MockWorkRepo)
	uc := usecase.NewVerificationUsecase(edu, work, nil, fixedClock)

	edu.On("ListByStatus", ctx, domain.VerificationStatusPending).Return([]domain.EducationEntry{*pendingEducation(10)}, nil)
	work.On("ListByStatus", ctx, domain.VerificationStatusPending).Return(nil, nil)

	pending, err := uc.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending.Education, 1)
	assert.NotNil(t, pending.Work)
	assert.Empty(t, pending.Work)
}
