package impl

import (
	"context"
	"testing"
	"time"

	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	mockSvc "coach/internal/mocks/service"
	"coach/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type coachServiceFixtures struct {
	service usecase.CoachUsecase
	coach   *mockSvc.MockCoachService
}

func createTestCoachService(t *testing.T) coachServiceFixtures {
	coach := mockSvc.NewMockCoachService(t)

	svc := NewCoachService(CoachServiceParams{
		Coach:  coach,
		Logger: newDiscardLogger(),
	})

	return coachServiceFixtures{service: svc, coach: coach}
}

func TestCoachService_GeneratePlan_Success(t *testing.T) {
	fx := createTestCoachService(t)

	ctx := context.Background()
	input := &usecase.GeneratePlanInput{
		Date:            time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Type:            "running",
		Intensity:       7,
		DurationMinutes: 45,
		Equipment:       "treadmill",
	}
	expected := &entity.RecoveryPlan{
		Title:           "Post-Run Cool-Down",
		DurationMinutes: 20,
		Exercises:       []string{"Quad Stretch"},
		Notes:           "Stay consistent.",
	}

	fx.coach.EXPECT().
		GeneratePlan(ctx, mock.AnythingOfType("*entity.Workout")).
		Run(func(ctx context.Context, workout *entity.Workout) {
			assert.Equal(t, "running", workout.Type)
			assert.Equal(t, 45, workout.DurationMinutes)
		}).
		Return(expected, nil)

	plan, err := fx.service.GeneratePlan(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, expected, plan)
}

func TestCoachService_GeneratePlan_Unavailable(t *testing.T) {
	fx := createTestCoachService(t)

	ctx := context.Background()

	fx.coach.EXPECT().
		GeneratePlan(ctx, mock.AnythingOfType("*entity.Workout")).
		Return(nil, domainerrors.ErrCoachUnavailable)

	plan, err := fx.service.GeneratePlan(ctx, &usecase.GeneratePlanInput{Type: "running"})

	assert.Nil(t, plan)
	assert.True(t, errors.Is(err, domainerrors.ErrCoachUnavailable))
}

func TestCoachService_Chat_Success(t *testing.T) {
	fx := createTestCoachService(t)

	ctx := context.Background()

	fx.coach.EXPECT().
		Chat(ctx, "how much rest do I need?").
		Return("At least one full day.", nil)

	output, err := fx.service.Chat(ctx, &usecase.ChatInput{Message: "how much rest do I need?"})

	require.NoError(t, err)
	assert.Equal(t, "At least one full day.", output.CoachResponse)
}

func TestCoachService_Chat_Unavailable(t *testing.T) {
	fx := createTestCoachService(t)

	ctx := context.Background()

	fx.coach.EXPECT().
		Chat(ctx, "hello").
		Return("", domainerrors.ErrCoachUnavailable)

	output, err := fx.service.Chat(ctx, &usecase.ChatInput{Message: "hello"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCoachUnavailable))
}
