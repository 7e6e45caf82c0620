package model

import (
	"time"

	"github.com/google/uuid"
)

// WellnessRatingModel mirrors the 'wellness_ratings' table. The composite
// unique index makes (owner, date) the natural key; concurrent writers for
// the same day are serialized by the constraint, not by application locks.
type WellnessRatingModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_owner_date,priority:1"`
	Date          time.Time `gorm:"type:date;not null;uniqueIndex:idx_ratings_owner_date,priority:2"`
	PainLevel     int       `gorm:"not null"`
	RecoveryScore int       `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WellnessRatingModel) TableName() string {
	return "wellness_ratings"
}
