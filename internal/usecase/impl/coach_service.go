package impl

import (
	"context"
	"log/slog"

	deliverycontext "coach/internal/delivery/context"
	"coach/internal/domain/entity"
	"coach/internal/domain/service"
	"coach/internal/observability"
	"coach/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// coachService implements the CoachUsecase interface. The heavy lifting
// happens in the infra client; this layer shapes inputs and logs outcomes.
type coachService struct {
	coach  service.CoachService
	logger *slog.Logger
}

// CoachServiceParams holds dependencies for coachService, injected by Fx.
type CoachServiceParams struct {
	fx.In

	Coach  service.CoachService
	Logger *slog.Logger
}

// NewCoachService is the constructor for coachService.
func NewCoachService(params CoachServiceParams) usecase.CoachUsecase {
	return &coachService{
		coach:  params.Coach,
		logger: params.Logger,
	}
}

func (srv *coachService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GeneratePlan builds a recovery plan for the described workout. The workout
// details are passed through as-is and nothing is persisted.
func (srv *coachService) GeneratePlan(ctx context.Context, input *usecase.GeneratePlanInput) (*entity.RecoveryPlan, error) {
	workout := &entity.Workout{
		Date:            input.Date,
		Type:            input.Type,
		Intensity:       input.Intensity,
		DurationMinutes: input.DurationMinutes,
		Equipment:       input.Equipment,
	}

	plan, err := srv.coach.GeneratePlan(ctx, workout)
	observability.RecordCoachRequest("generate_plan", err)
	if err != nil {
		srv.log(ctx).Warn("Failed to generate recovery plan", slog.String("type", input.Type), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate recovery plan")
	}

	srv.log(ctx).Debug("Recovery plan generated", slog.String("title", plan.Title))

	return plan, nil
}

// Chat forwards one user message to the coach and returns its reply.
func (srv *coachService) Chat(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	reply, err := srv.coach.Chat(ctx, input.Message)
	observability.RecordCoachRequest("chat", err)
	if err != nil {
		srv.log(ctx).Warn("Coach chat failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "coach chat failed")
	}

	return &usecase.ChatOutput{CoachResponse: reply}, nil
}
