package usecase

import (
	"context"
	"time"

	"coach/internal/domain/entity"
)

// GeneratePlanInput carries the workout details the plan is built from.
// The workout is not persisted by this operation.
type GeneratePlanInput struct {
	Date            time.Time
	Type            string
	Intensity       int
	DurationMinutes int
	Equipment       string
}

// ChatInput carries one user message to the coach.
type ChatInput struct {
	Message string
}

// ChatOutput carries the coach's reply.
type ChatOutput struct {
	CoachResponse string
}

// CoachUsecase defines the interface for AI-backed coaching operations.
type CoachUsecase interface {
	GeneratePlan(ctx context.Context, input *GeneratePlanInput) (*entity.RecoveryPlan, error)
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)
}
