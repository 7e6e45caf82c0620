package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkoutModel mirrors the 'workouts' table. Rows are insert-only; there is
// no update or delete path for logged workouts.
type WorkoutModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index:idx_workouts_owner_date,priority:1"`
	Date            time.Time `gorm:"type:date;not null;index:idx_workouts_owner_date,priority:2"`
	Type            string    `gorm:"type:varchar(100);not null"`
	Intensity       int       `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	Equipment       string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "workouts"
}
