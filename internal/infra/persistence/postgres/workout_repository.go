package postgres

import (
	"context"

	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/domain/repository"
	"coach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// workoutRepository implements the domain.WorkoutRepository interface using GORM.
type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository is the constructor for workoutRepository.
func NewWorkoutRepository(db *gorm.DB) repository.WorkoutRepository {
	return &workoutRepository{db: db}
}

// Create persists a new workout row for its owner.
func (repo *workoutRepository) Create(ctx context.Context, workout *entity.Workout) error {
	workoutM := fromWorkoutDomain(workout)

	if err := repo.db.WithContext(ctx).Create(workoutM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required workout information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout")
	}

	workout.ID = workoutM.ID
	workout.CreatedAt = workoutM.CreatedAt

	return nil
}

// ListByOwner returns all workouts for one owner, most recent date first.
// Other users' rows never enter the query, so cross-owner data cannot leak
// through this path.
func (repo *workoutRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Workout, error) {
	var workoutMs []*model.WorkoutModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC").
		Find(&workoutMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}

	workouts := make([]*entity.Workout, 0, len(workoutMs))
	for _, workoutM := range workoutMs {
		workouts = append(workouts, toWorkoutDomain(workoutM))
	}

	return workouts, nil
}

// --- Mapper Functions ---

func toWorkoutDomain(data *model.WorkoutModel) *entity.Workout {
	if data == nil {
		return nil
	}

	return &entity.Workout{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Date:            data.Date,
		Type:            data.Type,
		Intensity:       data.Intensity,
		DurationMinutes: data.DurationMinutes,
		Equipment:       data.Equipment,
		CreatedAt:       data.CreatedAt,
	}
}

func fromWorkoutDomain(data *entity.Workout) *model.WorkoutModel {
	if data == nil {
		return nil
	}

	return &model.WorkoutModel{
		ID:              data.ID,
		OwnerID:         data.OwnerID,
		Date:            data.Date,
		Type:            data.Type,
		Intensity:       data.Intensity,
		DurationMinutes: data.DurationMinutes,
		Equipment:       data.Equipment,
	}
}
