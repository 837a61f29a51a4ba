package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

// EntryHandler handles learning-entry requests
type EntryHandler struct {
	entryService ports.EntryService
	logger       *logger.Logger
}

// NewEntryHandler creates a new entry handler
func NewEntryHandler(entryService ports.EntryService, logger *logger.Logger) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
		logger:       logger,
	}
}

// SaveEntry creates an entry or replaces the items of an existing one
func (h *EntryHandler) SaveEntry(c echo.Context) error {
	var req ports.SaveEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, created, err := h.entryService.Save(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Save entry failed", "error", err, "date", req.Date)
		return domainHTTPError(err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, SaveEntryResponse{Created: created, Entry: entry})
}

// GetEntry returns the entry for a date
func (h *EntryHandler) GetEntry(c echo.Context) error {
	date := c.Param("date")

	entry, err := h.entryService.Get(c.Request().Context(), date)
	if err != nil {
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes the entry for a date
func (h *EntryHandler) DeleteEntry(c echo.Context) error {
	date := c.Param("date")

	if err := h.entryService.Delete(c.Request().Context(), date); err != nil {
		h.logger.Error("Delete entry failed", "error", err, "date", date)
		return domainHTTPError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Entry deleted"})
}

// ListDates returns all entry dates, newest first
func (h *EntryHandler) ListDates(c echo.Context) error {
	dates, err := h.entryService.Dates(c.Request().Context())
	if err != nil {
		h.logger.Error("List dates failed", "error", err)
		return domainHTTPError(err)
	}
	if dates == nil {
		dates = []string{}
	}

	return c.JSON(http.StatusOK, dates)
}
