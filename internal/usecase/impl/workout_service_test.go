package impl

import (
	"context"
	"testing"
	"time"

	"coach/internal/domain/entity"
	mockRepo "coach/internal/mocks/repository"
	"coach/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type workoutServiceFixtures struct {
	service     usecase.WorkoutUsecase
	workoutRepo *mockRepo.MockWorkoutRepository
}

func createTestWorkoutService(t *testing.T) workoutServiceFixtures {
	workoutRepo := mockRepo.NewMockWorkoutRepository(t)

	svc := NewWorkoutService(WorkoutServiceParams{
		WorkoutRepo: workoutRepo,
		Logger:      newDiscardLogger(),
	})

	return workoutServiceFixtures{
		service:     svc,
		workoutRepo: workoutRepo,
	}
}

func TestWorkoutService_Log_Success(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.LogWorkoutInput{
		OwnerID:         ownerID,
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:            "cycling",
		Intensity:       6,
		DurationMinutes: 90,
		Equipment:       "road bike",
	}

	fx.workoutRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Workout")).
		Run(func(ctx context.Context, workout *entity.Workout) {
			workout.ID = uuid.New()
			workout.CreatedAt = time.Now()
		}).
		Return(nil)

	workout, err := fx.service.Log(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, ownerID, workout.OwnerID)
	assert.Equal(t, "cycling", workout.Type)
	assert.Equal(t, 90, workout.DurationMinutes)
	assert.NotEqual(t, uuid.Nil, workout.ID)
}

func TestWorkoutService_Log_RepositoryError(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()

	fx.workoutRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Workout")).
		Return(errors.New("connection refused"))

	workout, err := fx.service.Log(ctx, &usecase.LogWorkoutInput{OwnerID: uuid.New()})

	assert.Nil(t, workout)
	assert.Error(t, err)
}

func TestWorkoutService_List(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	stored := []*entity.Workout{
		{ID: uuid.New(), OwnerID: ownerID, Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), OwnerID: ownerID, Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	fx.workoutRepo.EXPECT().ListByOwner(ctx, ownerID).Return(stored, nil)

	workouts, err := fx.service.List(ctx, ownerID)

	require.NoError(t, err)
	require.Len(t, workouts, 2)
	// Repository ordering is preserved: newest first.
	assert.True(t, workouts[0].Date.After(workouts[1].Date))
}

func TestWorkoutService_List_Empty(t *testing.T) {
	fx := createTestWorkoutService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.workoutRepo.EXPECT().ListByOwner(ctx, ownerID).Return([]*entity.Workout{}, nil)

	workouts, err := fx.service.List(ctx, ownerID)

	require.NoError(t, err)
	assert.Empty(t, workouts)
}
