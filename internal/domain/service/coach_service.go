package service

import (
	"context"

	"coach/internal/domain/entity"
)

// CoachService defines the interface to the AI text-generation collaborator.
// Implementations may be unconfigured, in which case every call fails with a
// service-unavailable error instead of blocking process startup.
type CoachService interface {
	// GeneratePlan asks the coach for a structured recovery plan for the
	// given workout. The reply must parse into entity.RecoveryPlan.
	GeneratePlan(ctx context.Context, workout *entity.Workout) (*entity.RecoveryPlan, error)

	// Chat returns a free-text coaching reply to the user's message.
	Chat(ctx context.Context, message string) (string, error)
}
