package handler

import (
	"context"
	"net/http"
	"strings"
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

func TestWorkoutHandler_Log(t *testing.T) {
	t.Run("should return 201 and echo the stored workout", func(t *testing.T) {
		uc := mocksusecase.NewMockWorkoutUsecase(t)
		handler := &WorkoutHandler{uc: uc, logger: newDiscardLogger()}

		ownerID := uuid.New()
		workoutID := uuid.New()
		uc.EXPECT().
			Log(mock.Anything, mock.AnythingOfType("*usecase.LogWorkoutInput")).
			RunAndReturn(func(_ context.Context, input *usecase.LogWorkoutInput) (*entity.Workout, error) {
				assert.Equal(t, ownerID, input.OwnerID)
				assert.Equal(t, "run", input.Type)
				assert.Equal(t, 7, input.Intensity)
				assert.Equal(t, 45, input.DurationMinutes)
				assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), input.Date)

				return &entity.Workout{
					ID:              workoutID,
					OwnerID:         input.OwnerID,
					Date:            input.Date,
					Type:            input.Type,
					Intensity:       input.Intensity,
					DurationMinutes: input.DurationMinutes,
					CreatedAt:       time.Now(),
				}, nil
			})

		c, rec := newTestContext(t, http.MethodPost, "/api/workouts",
			`{"date":"2026-03-14","type":"run","intensity":7,"duration":45}`)
		asAuthenticated(c, ownerID)

		require.NoError(t, handler.Log(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), workoutID.String())
		assert.Contains(t, rec.Body.String(), `"date":"2026-03-14"`)
		assert.Contains(t, rec.Body.String(), `"duration":45`)
	})

	t.Run("should reject a date that is not YYYY-MM-DD", func(t *testing.T) {
		handler := &WorkoutHandler{uc: mocksusecase.NewMockWorkoutUsecase(t), logger: newDiscardLogger()}

		c, _ := newTestContext(t, http.MethodPost, "/api/workouts",
			`{"date":"14/03/2026","type":"run","intensity":7,"duration":45}`)
		asAuthenticated(c, uuid.New())

		err := handler.Log(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("should reject an out-of-range intensity", func(t *testing.T) {
		handler := &WorkoutHandler{uc: mocksusecase.NewMockWorkoutUsecase(t), logger: newDiscardLogger()}

		c, _ := newTestContext(t, http.MethodPost, "/api/workouts",
			`{"date":"2026-03-14","type":"run","intensity":11,"duration":45}`)
		asAuthenticated(c, uuid.New())

		err := handler.Log(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("should fail with the uniform token error when no identity is set", func(t *testing.T) {
		handler := &WorkoutHandler{uc: mocksusecase.NewMockWorkoutUsecase(t), logger: newDiscardLogger()}

		c, _ := newTestContext(t, http.MethodPost, "/api/workouts",
			`{"date":"2026-03-14","type":"run","intensity":7,"duration":45}`)

		err := handler.Log(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})
}

func TestWorkoutHandler_List(t *testing.T) {
	t.Run("should render workouts in the order the use case returns them", func(t *testing.T) {
		uc := mocksusecase.NewMockWorkoutUsecase(t)
		handler := &WorkoutHandler{uc: uc, logger: newDiscardLogger()}

		ownerID := uuid.New()
		uc.EXPECT().
			List(mock.Anything, ownerID).
			Return([]*entity.Workout{
				{ID: uuid.New(), OwnerID: ownerID, Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Type: "swim", Intensity: 5, DurationMinutes: 30},
				{ID: uuid.New(), OwnerID: ownerID, Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Type: "run", Intensity: 7, DurationMinutes: 45},
			}, nil)

		c, rec := newTestContext(t, http.MethodGet, "/api/workouts", "")
		asAuthenticated(c, ownerID)

		require.NoError(t, handler.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Less(t, strings.Index(body, "2026-03-15"), strings.Index(body, "2026-03-14"))
	})

	t.Run("should render an empty list, not null, for a fresh account", func(t *testing.T) {
		uc := mocksusecase.NewMockWorkoutUsecase(t)
		handler := &WorkoutHandler{uc: uc, logger: newDiscardLogger()}

		ownerID := uuid.New()
		uc.EXPECT().List(mock.Anything, ownerID).Return(nil, nil)

		c, rec := newTestContext(t, http.MethodGet, "/api/workouts", "")
		asAuthenticated(c, ownerID)

		require.NoError(t, handler.List(c))
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})
}
