package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/studyloop/core/internal/domain/entities"
	"github.com/studyloop/core/internal/domain/schedule"
	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

// ProgressService builds the study progress report
type ProgressService struct {
	entryRepo ports.EntryRepository
	logger    *logger.Logger
	today     func() string
}

// NewProgressService creates a new progress service
func NewProgressService(entryRepo ports.EntryRepository, logger *logger.Logger) *ProgressService {
	return &ProgressService{
		entryRepo: entryRepo,
		logger:    logger,
		today:     entities.Today,
	}
}

// Report returns every entry oldest-first with per-review status
// derived against today's date.
func (s *ProgressService) Report(ctx context.Context) ([]ports.EntryProgress, error) {
	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	today := s.today()
	report := make([]ports.EntryProgress, 0, len(entries))
	for _, entry := range entries {
		reviews := make([]ports.ReviewProgress, 0, len(entry.Reviews))
		for i, review := range entry.Reviews {
			reviews = append(reviews, ports.ReviewProgress{
				Stage:   i + 1,
				DueDate: review.DueDate,
				Status:  review.Status(today),
			})
		}

		report = append(report, ports.EntryProgress{
			Date:           entry.Date,
			Items:          entry.Items,
			CompletedCount: entry.CompletedCount(),
			Stages:         schedule.Stages,
			Reviews:        reviews,
		})
	}

	return report, nil
}
