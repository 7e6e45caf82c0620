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

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for ratingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upsert records how the owner felt on one day. The first submission for a
// date inserts a row; later submissions overwrite its scores. The decision
// runs inside one transaction so two concurrent first-submissions cannot
// both insert; the loser hits the unique index and gets a conflict error.
func (srv *ratingService) Upsert(ctx context.Context, input *usecase.UpsertRatingInput) (*entity.WellnessRating, error) {
	var persisted *entity.WellnessRating

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.RatingRepo()

		existing, findErr := ratingRepo.FindByOwnerAndDate(ctx, input.OwnerID, input.Date)
		if findErr != nil && !errors.Is(findErr, repository.ErrRatingNotFound) {
			return errors.Wrap(findErr, "failed to look up existing rating")
		}

		if errors.Is(findErr, repository.ErrRatingNotFound) {
			newRating := &entity.WellnessRating{
				OwnerID:       input.OwnerID,
				Date:          input.Date,
				PainLevel:     input.PainLevel,
				RecoveryScore: input.RecoveryScore,
			}
			if createErr := ratingRepo.Create(ctx, newRating); createErr != nil {
				return createErr
			}
			persisted = newRating

			return nil
		}

		existing.PainLevel = input.PainLevel
		existing.RecoveryScore = input.RecoveryScore
		if updateErr := ratingRepo.Update(ctx, existing); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update rating")
		}

		// Re-read so the caller sees the row as stored, including the
		// refreshed updated_at.
		updated, refetchErr := ratingRepo.FindByOwnerAndDate(ctx, input.OwnerID, input.Date)
		if refetchErr != nil {
			return errors.Wrap(refetchErr, "failed to reload updated rating")
		}
		persisted = updated

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to upsert rating", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute rating upsert transaction")
	}

	observability.RecordRatingUpserted()
	srv.log(ctx).Debug("Rating upserted", slog.Any("ratingID", persisted.ID), slog.Any("ownerID", persisted.OwnerID))

	return persisted, nil
}

// List returns the owner's ratings in chronological order, oldest first.
func (srv *ratingService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.WellnessRating, error) {
	ratings, err := srv.ratingRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list ratings", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return ratings, nil
}
