package impl

import (
	"context"
	"log/slog"

	deliverycontext "coach/internal/delivery/context"
	"coach/internal/domain/entity"
	"coach/internal/domain/repository"
	"coach/internal/observability"
	"coach/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// workoutService implements the WorkoutUsecase interface.
type workoutService struct {
	workoutRepo repository.WorkoutRepository
	logger      *slog.Logger
}

// WorkoutServiceParams holds dependencies for workoutService, injected by Fx.
type WorkoutServiceParams struct {
	fx.In

	WorkoutRepo repository.WorkoutRepository
	Logger      *slog.Logger
}

// NewWorkoutService is the constructor for workoutService.
func NewWorkoutService(params WorkoutServiceParams) usecase.WorkoutUsecase {
	return &workoutService{
		workoutRepo: params.WorkoutRepo,
		logger:      params.Logger,
	}
}

func (srv *workoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Log records one completed workout for its owner.
func (srv *workoutService) Log(ctx context.Context, input *usecase.LogWorkoutInput) (*entity.Workout, error) {
	workout := &entity.Workout{
		OwnerID:         input.OwnerID,
		Date:            input.Date,
		Type:            input.Type,
		Intensity:       input.Intensity,
		DurationMinutes: input.DurationMinutes,
		Equipment:       input.Equipment,
	}

	if err := srv.workoutRepo.Create(ctx, workout); err != nil {
		srv.log(ctx).Error("Failed to log workout", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log workout")
	}

	observability.RecordWorkoutLogged()
	srv.log(ctx).Debug("Workout logged", slog.Any("workoutID", workout.ID), slog.Any("ownerID", workout.OwnerID))

	return workout, nil
}

// List returns the owner's workout history, most recent first.
func (srv *workoutService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Workout, error) {
	workouts, err := srv.workoutRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list workouts", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list workouts")
	}

	return workouts, nil
}
