package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/studyloop/core/internal/domain/schedule"
	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

const exportSheet = "Progress"

// ExportService renders the progress report as an xlsx workbook
type ExportService struct {
	progress ports.ProgressService
	logger   *logger.Logger
}

// NewExportService creates a new export service
func NewExportService(progress ports.ProgressService, logger *logger.Logger) *ExportService {
	return &ExportService{
		progress: progress,
		logger:   logger,
	}
}

// WriteXLSX writes the full progress report as a spreadsheet: one row
// per entry, one column per review stage.
func (s *ExportService) WriteXLSX(ctx context.Context, w io.Writer) error {
	report, err := s.progress.Report(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)

	headers := []string{"Learning Date", "Items", "Completed"}
	for i := 0; i < schedule.Stages; i++ {
		headers = append(headers, fmt.Sprintf("Review %d", i+1))
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, entry := range report {
		values := []interface{}{
			entry.Date,
			strings.Join(entry.Items, "; "),
			fmt.Sprintf("%d/%d", entry.CompletedCount, entry.Stages),
		}
		for _, review := range entry.Reviews {
			values = append(values, fmt.Sprintf("%s (%s)", review.DueDate, review.Status))
		}

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to build cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row+2, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Infow("Progress exported", "entries", len(report))
	return nil
}
