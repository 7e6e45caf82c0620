package repository

import (
	"context"
	"errors"
	"time"

	"coach/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRatingNotFound is returned when no rating exists for an (owner, date) pair.
var ErrRatingNotFound = errors.New("wellness rating not found")

// RatingRepository defines the operations for wellness-rating persistence.
// Ratings are unique per (owner, date); the upsert flow in the usecase layer
// relies on FindByOwnerAndDate + Create/Update inside one transaction.
type RatingRepository interface {
	// Create persists a new rating. A concurrent insert for the same
	// (owner, date) surfaces as a conflict error from the storage layer.
	Create(ctx context.Context, rating *entity.WellnessRating) error

	// Update persists new scores for an existing rating row.
	Update(ctx context.Context, rating *entity.WellnessRating) error

	// FindByOwnerAndDate retrieves the single rating for the owner on the
	// given calendar date, or ErrRatingNotFound.
	FindByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date time.Time) (*entity.WellnessRating, error)

	// ListByOwner returns all ratings for the owner in date order, oldest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.WellnessRating, error)
}
