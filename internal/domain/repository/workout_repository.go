package repository

import (
	"context"

	"coach/internal/domain/entity"

	"github.com/google/uuid"
)

// WorkoutRepository defines the operations for workout persistence.
// Every read and write is scoped to an owning user; no call on this
// interface can reach another user's rows.
type WorkoutRepository interface {
	// Create persists a new workout stamped with its owner.
	Create(ctx context.Context, workout *entity.Workout) error

	// ListByOwner returns all workouts for the owner, most recent date first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Workout, error)
}
