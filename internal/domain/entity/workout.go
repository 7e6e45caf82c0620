package entity

import (
	"time"

	"github.com/google/uuid"
)

// Workout is a single logged training session. Workouts are immutable after
// submission and belong to exactly one user via OwnerID.
type Workout struct {
	ID              uuid.UUID // The unique identifier for the workout.
	OwnerID         uuid.UUID // The user who logged this workout.
	Date            time.Time // Calendar date of the session (time-of-day is ignored).
	Type            string    // Activity type, e.g. "run" or "strength".
	Intensity       int       // Perceived intensity on a 1-10 scale.
	DurationMinutes int       // Session length in minutes.
	Equipment       string    // Optional equipment note; empty when unspecified.
	CreatedAt       time.Time
}
