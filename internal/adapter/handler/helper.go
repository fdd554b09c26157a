package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/HectorGitt/MeetDash/internal/adapter/dto/common"
	usecaseErrors "github.com/HectorGitt/MeetDash/internal/usecase/errors"
)

// respondError maps domain errors to HTTP responses and logs the rest.
// Validation never reaches here; it is rejected before the service call.
func respondError(logger *zap.Logger, c echo.Context, err error) error {
	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound):
		status, code = http.StatusNotFound, "meeting_not_found"
	case stdErrors.Is(err, usecaseErrors.ErrParticipantNotFound):
		status, code = http.StatusNotFound, "participant_not_found"
	case stdErrors.Is(err, usecaseErrors.ErrConnectorNotFound):
		status, code = http.StatusNotFound, "connector_not_found"
	case stdErrors.Is(err, usecaseErrors.ErrAnalyticsNotFound):
		status, code = http.StatusNotFound, "analytics_not_found"
	case stdErrors.Is(err, usecaseErrors.ErrAnalyticsExists):
		// duplicate analytics is a conflict, surfaced distinctly from NotFound
		status, code = http.StatusBadRequest, "analytics_already_exists"
	}

	if status == http.StatusInternalServerError && logger != nil {
		logger.Error("http.response.error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.JSON(status, common.ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

// unprocessable rejects a payload that failed decoding or validation
// with 422, before any store access
func unprocessable(c echo.Context, code string, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, common.ErrorResponse{
		Error:   code,
		Message: err.Error(),
	})
}

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// invalidIDResponse rejects a malformed :id path parameter
func invalidIDResponse(c echo.Context, resource string) error {
	return c.JSON(http.StatusBadRequest, common.ErrorResponse{
		Error:   "invalid_" + resource + "_id",
		Message: resource + " ID must be a valid UUID",
	})
}
