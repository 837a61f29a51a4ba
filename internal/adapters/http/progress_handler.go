package http

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ProgressHandler handles progress, export and analysis requests
type ProgressHandler struct {
	progressService ports.ProgressService
	exportService   ports.ExportService
	analysisService ports.AnalysisService
	logger          *logger.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(
	progressService ports.ProgressService,
	exportService ports.ExportService,
	analysisService ports.AnalysisService,
	logger *logger.Logger,
) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		exportService:   exportService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// Report returns the full progress report, oldest entry first
func (h *ProgressHandler) Report(c echo.Context) error {
	report, err := h.progressService.Report(c.Request().Context())
	if err != nil {
		h.logger.Error("Progress report failed", "error", err)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, report)
}

// ExportXLSX downloads the progress report as a spreadsheet
func (h *ProgressHandler) ExportXLSX(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.exportService.WriteXLSX(c.Request().Context(), &buf); err != nil {
		h.logger.Error("Progress export failed", "error", err)
		return domainHTTPError(err)
	}

	filename := fmt.Sprintf("studyloop-progress-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// PushAnalysis sends a dataset snapshot to the analysis endpoint
func (h *ProgressHandler) PushAnalysis(c echo.Context) error {
	result, err := h.analysisService.Push(c.Request().Context())
	if err != nil {
		h.logger.Error("Analysis push failed", "error", err)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, result)
}
