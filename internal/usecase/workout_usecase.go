package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coach/internal/domain/entity"
)

// LogWorkoutInput defines the data required to record a completed workout.
type LogWorkoutInput struct {
	OwnerID         uuid.UUID
	Date            time.Time
	Type            string
	Intensity       int
	DurationMinutes int
	Equipment       string
}

// WorkoutUsecase defines the interface for workout-related business operations.
// Workouts are append-only; once logged they are never edited or removed.
type WorkoutUsecase interface {
	Log(ctx context.Context, input *LogWorkoutInput) (*entity.Workout, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Workout, error)
}
