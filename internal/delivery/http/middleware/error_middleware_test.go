package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "coach/internal/domain/errors"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	t.Run("should render an application error with its own status", func(t *testing.T) {
		m := newTestErrorMiddleware()
		c, rec := newErrorTestContext(t)

		m.HandleHTTPError(domainerrors.ErrInvalidToken, c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"INVALID_TOKEN"`)
		assert.Contains(t, rec.Body.String(), "invalid or expired token")
	})

	t.Run("should unwrap an application error hidden behind wrapping", func(t *testing.T) {
		m := newTestErrorMiddleware()
		c, rec := newErrorTestContext(t)

		wrapped := errors.Wrap(domainerrors.ErrCoachUnavailable, "failed to generate recovery plan")
		m.HandleHTTPError(wrapped, c)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"COACH_UNAVAILABLE"`)
	})

	t.Run("should pass through an echo HTTP error", func(t *testing.T) {
		m := newTestErrorMiddleware()
		c, rec := newErrorTestContext(t)

		m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), c)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "method not allowed")
	})

	t.Run("should mask unknown errors as an opaque 500", func(t *testing.T) {
		m := newTestErrorMiddleware()
		c, rec := newErrorTestContext(t)

		m.HandleHTTPError(errors.New("pq: connection refused"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"INTERNAL_ERROR"`)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("should not write twice on a committed response", func(t *testing.T) {
		m := newTestErrorMiddleware()
		c, rec := newErrorTestContext(t)

		assert.NoError(t, c.NoContent(http.StatusNoContent))
		m.HandleHTTPError(domainerrors.ErrInternalError, c)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
