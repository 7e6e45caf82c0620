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

// RatingHandler holds dependencies for wellness rating handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// RatingHandlerParams holds dependencies for RatingHandler, injected by Fx.
type RatingHandlerParams struct {
	fx.In

	RatingUsecase usecase.RatingUsecase
	Logger        *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler.
func NewRatingHandler(params RatingHandlerParams) *RatingHandler {
	return &RatingHandler{
		uc:     params.RatingUsecase,
		logger: params.Logger,
	}
}

// upsertRatingRequest is the payload for recording a daily self-assessment.
type upsertRatingRequest struct {
	Date          string `json:"date" validate:"required"`
	PainLevel     int    `json:"pain_level" validate:"required,min=1,max=10"`
	RecoveryScore int    `json:"recovery_score" validate:"required,min=1,max=10"`
}

// ratingView is the public shape of a wellness rating.
type ratingView struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	PainLevel     int       `json:"pain_level"`
	RecoveryScore int       `json:"recovery_score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toRatingView(rating *entity.WellnessRating) ratingView {
	return ratingView{
		ID:            rating.ID.String(),
		Date:          rating.Date.Format(dateLayout),
		PainLevel:     rating.PainLevel,
		RecoveryScore: rating.RecoveryScore,
		CreatedAt:     rating.CreatedAt,
		UpdatedAt:     rating.UpdatedAt,
	}
}

// Upsert handles the request to record how the caller feels today. A repeat
// submission for the same date overwrites the earlier scores.
func (h *RatingHandler) Upsert(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req upsertRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return errors.WithStack(err)
	}

	rating, err := h.uc.Upsert(c.Request().Context(), &usecase.UpsertRatingInput{
		OwnerID:       ownerID,
		Date:          date,
		PainLevel:     req.PainLevel,
		RecoveryScore: req.RecoveryScore,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toRatingView(rating), "Rating recorded successfully")
}

// List handles the request to read the caller's rating history.
func (h *RatingHandler) List(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ratings, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]ratingView, 0, len(ratings))
	for _, rating := range ratings {
		views = append(views, toRatingView(rating))
	}

	return response.Success(c, http.StatusOK, views, "Ratings retrieved successfully")
}
