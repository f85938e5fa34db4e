package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-peerrank-backend/internal/domain"
	"go-peerrank-backend/internal/usecase"
	"go-peerrank-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("Should report ok when every dependency answers", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"database": func(context.Context) error { return nil },
		})
		status, healthy := uc.Check(ctx)
		assert.True(t, healthy)
		assert.Equal(t, "ok", status["status"])
		assert.Equal(t, "ok", status["database"])
	})

	t.Run("Should degrade when one dependency fails", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"database": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("connection refused") },
		})
		status, healthy := uc.Check(ctx)
		assert.False(t, healthy)
		assert.Equal(t, "degraded", status["status"])
		assert.Equal(t, "unavailable", status["redis"])
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return the stored user", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, int64(4)).Return(&domain.User{ID: 4}, nil)

		user, err := usecase.NewAuthUsecase(users).GetCurrentUser(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, int64(4), user.ID)
	})

	t.Run("Should return not found for an unknown id", func(t *testing.T) {
		users := new(MockUserRepo)
		users.On("GetByID", ctx, int64(9)).Return(nil, nil)

		_, err := usecase.NewAuthUsecase(users).GetCurrentUser(ctx, 9)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})
}
