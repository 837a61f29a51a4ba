package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

// ReviewHandler handles due-review requests
type ReviewHandler struct {
	reviewService ports.ReviewService
	logger        *logger.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService ports.ReviewService, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// DueToday lists the uncompleted reviews that fall due today
func (h *ReviewHandler) DueToday(c echo.Context) error {
	due, err := h.reviewService.DueToday(c.Request().Context())
	if err != nil {
		h.logger.Error("List due reviews failed", "error", err)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, due)
}

// Complete marks one review of an entry as done
func (h *ReviewHandler) Complete(c echo.Context) error {
	var req CompleteReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.reviewService.Complete(c.Request().Context(), req.EntryDate, *req.ReviewIndex)
	if err != nil {
		h.logger.Error("Complete review failed",
			"error", err,
			"entry_date", req.EntryDate,
			"review_index", *req.ReviewIndex,
		)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, entry)
}
