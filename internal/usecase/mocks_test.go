package usecase_test

import (
	"context"
	"time"

	"go-peerrank-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) GetByID(ctx context.Context, id int64) (*domain.EducationEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EducationEntry), args.Error(1)
}

func (m *MockEducationRepo) ListVerifiedByUserIDs(ctx context.Context, userIDs []int64) ([]domain.EducationEntry, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EducationEntry), args.Error(1)
}

func (m *MockEducationRepo) ListByStatus(ctx context.Context, status string) ([]domain.EducationEntry, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EducationEntry), args.Error(1)
}

func (m *MockEducationRepo) UpdateVerificationStatus(ctx context.Context, id int64, status string, verifiedAt *time.Time) (bool, error) {
	args := m.Called(ctx, id, status, verifiedAt)
	return args.Bool(0), args.Error(1)
}

type MockWorkRepo struct {
	mock.Mock
}

func (m *MockWorkRepo) GetByID(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkExperience), args.Error(1)
}

func (m *MockWorkRepo) ListVerifiedByUserIDs(ctx context.Context, userIDs []int64) ([]domain.WorkExperience, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkExperience), args.Error(1)
}

func (m *MockWorkRepo) ListByStatus(ctx context.Context, status string) ([]domain.WorkExperience, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkExperience), args.Error(1)
}

func (m *MockWorkRepo) UpdateVerificationStatus(ctx context.Context, id int64, status string, verifiedAt *time.Time) (bool, error) {
	args := m.Called(ctx, id, status, verifiedAt)
	return args.Bool(0), args.Error(1)
}

type MockRecommendationRepo struct {
	mock.Mock
}

func (m *MockRecommendationRepo) GetByID(ctx context.Context, id int64) (*domain.Recommendation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepo) ListApprovedByRequesterIDs(ctx context.Context, requesterIDs []int64) ([]domain.Recommendation, error) {
	args := m.Called(ctx, requesterIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepo) Decide(ctx context.Context, rec *domain.Recommendation) (bool, error) {
	args := m.Called(ctx, rec)
	return args.Bool(0), args.Error(1)
}

type MockScoreCache struct {
	mock.Mock
}

func (m *MockScoreCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScoreCache) Get(ctx context.Context, key domain.ScoreKey, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockScoreCache) Set(ctx context.Context, key domain.ScoreKey, value any) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *MockScoreCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// Fixtures

var today = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }

// verifiedEducation scores 50 (tier 2 bachelor, no GPA).
func verifiedEducation(id, userID int64) domain.EducationEntry {
	return domain.EducationEntry{
		ID:                 id,
		UserID:             userID,
		DegreeType:         domain.DegreeBachelor,
		UniversityName:     "State University",
		UniversityTier:     2,
		IsCompleted:        true,
		VerificationStatus: domain.VerificationStatusVerified,
	}
}

// verifiedJob scores 32 plus a 3 point streak (12 months full time).
func verifiedJob(id, userID int64) domain.WorkExperience {
	return domain.WorkExperience{
		ID:                 id,
		UserID:             userID,
		CompanyName:        "Acme",
		Title:              "Engineer",
		EmploymentType:     domain.EmploymentFullTime,
		StartDate:          date(2023, time.January, 1),
		EndDate:            ptr(date(2024, time.January, 1)),
		VerificationStatus: domain.VerificationStatusVerified,
	}
}
