package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"coach/internal/delivery/http/response"
	"coach/internal/usecase"
)

// CoachHandler holds dependencies for AI coaching handlers.
type CoachHandler struct {
	uc     usecase.CoachUsecase
	logger *slog.Logger
}

// CoachHandlerParams holds dependencies for CoachHandler, injected by Fx.
type CoachHandlerParams struct {
	fx.In

	CoachUsecase usecase.CoachUsecase
	Logger       *slog.Logger
}

// NewCoachHandler is the constructor for CoachHandler.
func NewCoachHandler(params CoachHandlerParams) *CoachHandler {
	return &CoachHandler{
		uc:     params.CoachUsecase,
		logger: params.Logger,
	}
}

// generatePlanRequest describes the workout a recovery plan is requested for.
// The workout itself is not stored by this endpoint.
type generatePlanRequest struct {
	Date      string `json:"date" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Intensity int    `json:"intensity" validate:"required,min=1,max=10"`
	Duration  int    `json:"duration" validate:"required,min=1"`
	Equipment string `json:"equipment"`
}

// chatRequest carries one free-form message to the coach.
type chatRequest struct {
	UserMessage string `json:"user_message" validate:"required"`
}

// chatView carries the coach's reply.
type chatView struct {
	CoachResponse string `json:"coach_response"`
}

// GeneratePlan handles the request for a recovery plan tailored to one workout.
func (h *CoachHandler) GeneratePlan(c echo.Context) error {
	var req generatePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return errors.WithStack(err)
	}

	plan, err := h.uc.GeneratePlan(c.Request().Context(), &usecase.GeneratePlanInput{
		Date:            date,
		Type:            req.Type,
		Intensity:       req.Intensity,
		DurationMinutes: req.Duration,
		Equipment:       req.Equipment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Recovery plan generated successfully")
}

// Chat handles one question-and-answer exchange with the coach.
func (h *CoachHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Chat(c.Request().Context(), &usecase.ChatInput{Message: req.UserMessage})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, chatView{CoachResponse: output.CoachResponse}, "Chat completed successfully")
}
