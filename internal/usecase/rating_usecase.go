package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coach/internal/domain/entity"
)

// UpsertRatingInput defines the data required to record how a user feels on
// a given day. One row per (owner, date); resubmitting overwrites the scores.
type UpsertRatingInput struct {
	OwnerID       uuid.UUID
	Date          time.Time
	PainLevel     int
	RecoveryScore int
}

// RatingUsecase defines the interface for wellness rating operations.
type RatingUsecase interface {
	Upsert(ctx context.Context, input *UpsertRatingInput) (*entity.WellnessRating, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.WellnessRating, error)
}
