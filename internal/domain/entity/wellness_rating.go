package entity

import (
	"time"

	"github.com/google/uuid"
)

// WellnessRating is a daily self-assessment. At most one rating exists per
// (owner, date); a second submission for the same date updates the row in
// place instead of creating a duplicate.
type WellnessRating struct {
	ID            uuid.UUID // The unique identifier for the rating.
	OwnerID       uuid.UUID // The user who submitted this rating.
	Date          time.Time // Calendar date the rating applies to.
	PainLevel     int       // Self-reported pain on a 1-10 scale.
	RecoveryScore int       // Self-reported recovery on a 1-10 scale.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
