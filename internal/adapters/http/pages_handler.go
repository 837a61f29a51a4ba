package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyloop/core/internal/domain/entities"
	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

// PageHandler renders the tabbed UI page and its HTML fragments
type PageHandler struct {
	reviewService   ports.ReviewService
	progressService ports.ProgressService
	appName         string
	logger          *logger.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(reviewService ports.ReviewService, progressService ports.ProgressService, appName string, logger *logger.Logger) *PageHandler {
	return &PageHandler{
		reviewService:   reviewService,
		progressService: progressService,
		appName:         appName,
		logger:          logger,
	}
}

// Index renders the tabbed single-page UI
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index", map[string]interface{}{
		"AppName": h.appName,
		"Today":   entities.Today(),
	})
}

// ReviewsPartial renders the due-reviews fragment
func (h *PageHandler) ReviewsPartial(c echo.Context) error {
	due, err := h.reviewService.DueToday(c.Request().Context())
	if err != nil {
		h.logger.Error("Render reviews fragment failed", "error", err)
		return domainHTTPError(err)
	}

	return c.Render(http.StatusOK, "due-reviews", map[string]interface{}{
		"Reviews": due,
	})
}

// ProgressPartial renders the progress fragment
func (h *PageHandler) ProgressPartial(c echo.Context) error {
	report, err := h.progressService.Report(c.Request().Context())
	if err != nil {
		h.logger.Error("Render progress fragment failed", "error", err)
		return domainHTTPError(err)
	}

	return c.Render(http.StatusOK, "progress-cards", map[string]interface{}{
		"Entries": report,
	})
}
