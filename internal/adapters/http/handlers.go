package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyloop/core/internal/domain/entities"
)

// Request/Response types

// CompleteReviewRequest marks one review of an entry as done.
type CompleteReviewRequest struct {
	EntryDate   string `json:"entry_date" validate:"required"`
	ReviewIndex *int   `json:"review_index" validate:"required,min=0"`
}

// SaveEntryResponse wraps the stored entry with the action taken.
type SaveEntryResponse struct {
	Created bool            `json:"created"`
	Entry   *entities.Entry `json:"entry"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// domainHTTPError maps domain sentinel errors onto HTTP status codes.
func domainHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, entities.ErrEntryNotFound),
		errors.Is(err, entities.ErrReviewNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrInvalidDate),
		errors.Is(err, entities.ErrNoItems),
		errors.Is(err, entities.ErrTooManyItems):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrAnalysisNotEnabled):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
