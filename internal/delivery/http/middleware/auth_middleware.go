package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	domainerrors "coach/internal/domain/errors"
	"coach/internal/usecase"
)

// AuthMiddleware guards routes that require a logged-in user.
type AuthMiddleware struct {
	userUsecase usecase.UserUsecase
	logger      *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUsecase usecase.UserUsecase
	Logger      *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		userUsecase: params.UserUsecase,
		logger:      params.Logger,
	}
}

// Authenticate resolves the bearer token to a stored user before the handler
// runs. Every failure, missing header, bad scheme, bad token, or a token whose
// subject no longer exists, produces the same 401 so callers cannot probe
// which accounts exist.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return domainerrors.ErrInvalidToken
		}

		user, err := m.userUsecase.ResolveIdentity(c.Request().Context(), token)
		if err != nil {
			m.logger.Debug("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrInvalidToken
		}

		c.Set("userID", user.ID)
		c.Set("user", user)

		return next(c)
	}
}

func extractBearerToken(header string) (string, bool) {
	const prefix = "Bearer "

	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", false
	}

	return token, true
}
