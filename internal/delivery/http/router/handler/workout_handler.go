package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"coach/internal/delivery/http/response"
	"coach/internal/domain/entity"
	"coach/internal/usecase"
)

// WorkoutHandler holds dependencies for workout-related handlers.
type WorkoutHandler struct {
	uc     usecase.WorkoutUsecase
	logger *slog.Logger
}

// WorkoutHandlerParams holds dependencies for WorkoutHandler, injected by Fx.
type WorkoutHandlerParams struct {
	fx.In

	WorkoutUsecase usecase.WorkoutUsecase
	Logger         *slog.Logger
}

// NewWorkoutHandler is the constructor for WorkoutHandler.
func NewWorkoutHandler(params WorkoutHandlerParams) *WorkoutHandler {
	return &WorkoutHandler{
		uc:     params.WorkoutUsecase,
		logger: params.Logger,
	}
}

// logWorkoutRequest is the payload for recording a completed session.
type logWorkoutRequest struct {
	Date      string `json:"date" validate:"required"`
	Type      string `json:"type" validate:"required"`
	Intensity int    `json:"intensity" validate:"required,min=1,max=10"`
	Duration  int    `json:"duration" validate:"required,min=1"`
	Equipment string `json:"equipment"`
}

// workoutView is the public shape of a logged workout.
type workoutView struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Type      string    `json:"type"`
	Intensity int       `json:"intensity"`
	Duration  int       `json:"duration"`
	Equipment string    `json:"equipment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toWorkoutView(workout *entity.Workout) workoutView {
	return workoutView{
		ID:        workout.ID.String(),
		Date:      workout.Date.Format(dateLayout),
		Type:      workout.Type,
		Intensity: workout.Intensity,
		Duration:  workout.DurationMinutes,
		Equipment: workout.Equipment,
		CreatedAt: workout.CreatedAt,
	}
}

// Log handles the request to record a completed workout.
func (h *WorkoutHandler) Log(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req logWorkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workout input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return errors.WithStack(err)
	}

	workout, err := h.uc.Log(c.Request().Context(), &usecase.LogWorkoutInput{
		OwnerID:         ownerID,
		Date:            date,
		Type:            req.Type,
		Intensity:       req.Intensity,
		DurationMinutes: req.Duration,
		Equipment:       req.Equipment,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toWorkoutView(workout), "Workout logged successfully")
}

// List handles the request to read the caller's workout history.
func (h *WorkoutHandler) List(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	workouts, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]workoutView, 0, len(workouts))
	for _, workout := range workouts {
		views = append(views, toWorkoutView(workout))
	}

	return response.Success(c, http.StatusOK, views, "Workouts retrieved successfully")
}
