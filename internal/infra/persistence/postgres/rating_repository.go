package postgres

import (
	"context"
	"time"

	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/domain/repository"
	"coach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ratingRepository implements the domain.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Create persists a new wellness rating. A concurrent insert for the same
// (owner, date) pair trips the composite unique index and surfaces as
// ErrRatingConflict so the caller can retry.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.WellnessRating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRatingConflict.WrapMessage("rating for this date already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required rating information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// Update overwrites the scores of an existing rating row.
func (repo *ratingRepository) Update(ctx context.Context, rating *entity.WellnessRating) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WellnessRatingModel{}).
		Where("id = ? AND owner_id = ?", rating.ID, rating.OwnerID).
		Updates(map[string]any{
			"pain_level":     rating.PainLevel,
			"recovery_score": rating.RecoveryScore,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

// FindByOwnerAndDate fetches the single rating an owner logged for one day.
func (repo *ratingRepository) FindByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date time.Time) (*entity.WellnessRating, error) {
	var ratingM model.WellnessRatingModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND date = ?", ownerID, date).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by owner and date")
	}

	return toRatingDomain(&ratingM), nil
}

// ListByOwner returns all ratings for one owner in chronological order,
// oldest first. The trend view on the client depends on this ordering.
func (repo *ratingRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.WellnessRating, error) {
	var ratingMs []*model.WellnessRatingModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date ASC").
		Find(&ratingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]*entity.WellnessRating, 0, len(ratingMs))
	for _, ratingM := range ratingMs {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return ratings, nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.WellnessRatingModel) *entity.WellnessRating {
	if data == nil {
		return nil
	}

	return &entity.WellnessRating{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Date:          data.Date,
		PainLevel:     data.PainLevel,
		RecoveryScore: data.RecoveryScore,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromRatingDomain(data *entity.WellnessRating) *model.WellnessRatingModel {
	if data == nil {
		return nil
	}

	return &model.WellnessRatingModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Date:          data.Date,
		PainLevel:     data.PainLevel,
		RecoveryScore: data.RecoveryScore,
	}
}
