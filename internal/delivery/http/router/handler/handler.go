// Package handler contains the HTTP handlers for the application.
package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	domainerrors "coach/internal/domain/errors"
)

// dateLayout is the wire format for calendar dates in request and response
// bodies. Time-of-day is never transmitted.
const dateLayout = "2006-01-02"

// currentUserID reads the authenticated user's ID placed on the context by
// the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return userID, nil
}

// parseDate converts a wire-format date into a UTC midnight timestamp so the
// same calendar day always maps to the same stored value.
func parseDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WrapMessage("date must use the YYYY-MM-DD format")
	}

	return parsed, nil
}
