package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	mocksusecase "coach/internal/mocks/usecase"
	"coach/internal/usecase"
)

func TestRatingHandler_Upsert(t *testing.T) {
	t.Run("should return 201 with the persisted scores", func(t *testing.T) {
		uc := mocksusecase.NewMockRatingUsecase(t)
		handler := &RatingHandler{uc: uc, logger: newDiscardLogger()}

		ownerID := uuid.New()
		uc.EXPECT().
			Upsert(mock.Anything, mock.AnythingOfType("*usecase.UpsertRatingInput")).
			RunAndReturn(func(_ context.Context, input *usecase.UpsertRatingInput) (*entity.WellnessRating, error) {
				assert.Equal(t, ownerID, input.OwnerID)
				assert.Equal(t, 3, input.PainLevel)
				assert.Equal(t, 8, input.RecoveryScore)

				return &entity.WellnessRating{
					ID:            uuid.New(),
					OwnerID:       input.OwnerID,
					Date:          input.Date,
					PainLevel:     input.PainLevel,
					RecoveryScore: input.RecoveryScore,
				}, nil
			})

		c, rec := newTestContext(t, http.MethodPost, "/api/ratings",
			`{"date":"2026-03-14","pain_level":3,"recovery_score":8}`)
		asAuthenticated(c, ownerID)

		require.NoError(t, handler.Upsert(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"pain_level":3`)
		assert.Contains(t, rec.Body.String(), `"recovery_score":8`)
	})

	t.Run("should reject scores outside the 1-10 scale", func(t *testing.T) {
		handler := &RatingHandler{uc: mocksusecase.NewMockRatingUsecase(t), logger: newDiscardLogger()}

		c, _ := newTestContext(t, http.MethodPost, "/api/ratings",
			`{"date":"2026-03-14","pain_level":0,"recovery_score":11}`)
		asAuthenticated(c, uuid.New())

		err := handler.Upsert(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("should propagate a concurrent-write conflict", func(t *testing.T) {
		uc := mocksusecase.NewMockRatingUsecase(t)
		handler := &RatingHandler{uc: uc, logger: newDiscardLogger()}

		uc.EXPECT().
			Upsert(mock.Anything, mock.AnythingOfType("*usecase.UpsertRatingInput")).
			Return(nil, domainerrors.ErrRatingConflict)

		c, _ := newTestContext(t, http.MethodPost, "/api/ratings",
			`{"date":"2026-03-14","pain_level":3,"recovery_score":8}`)
		asAuthenticated(c, uuid.New())

		err := handler.Upsert(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrRatingConflict))
	})
}

func TestRatingHandler_List(t *testing.T) {
	t.Run("should render the caller's ratings", func(t *testing.T) {
		uc := mocksusecase.NewMockRatingUsecase(t)
		handler := &RatingHandler{uc: uc, logger: newDiscardLogger()}

		ownerID := uuid.New()
		uc.EXPECT().
			List(mock.Anything, ownerID).
			Return([]*entity.WellnessRating{
				{ID: uuid.New(), OwnerID: ownerID, Date: time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), PainLevel: 5, RecoveryScore: 4},
				{ID: uuid.New(), OwnerID: ownerID, Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), PainLevel: 3, RecoveryScore: 8},
			}, nil)

		c, rec := newTestContext(t, http.MethodGet, "/api/ratings", "")
		asAuthenticated(c, ownerID)

		require.NoError(t, handler.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2026-03-13")
		assert.Contains(t, rec.Body.String(), "2026-03-14")
	})

	t.Run("should fail with the uniform token error when no identity is set", func(t *testing.T) {
		handler := &RatingHandler{uc: mocksusecase.NewMockRatingUsecase(t), logger: newDiscardLogger()}

		c, _ := newTestContext(t, http.MethodGet, "/api/ratings", "")

		err := handler.List(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}
