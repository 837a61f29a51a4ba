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

// ReviewService surfaces due reviews and records completions
type ReviewService struct {
	entryRepo ports.EntryRepository
	logger    *logger.Logger
	// today overrides the clock in tests; empty means the real date.
	today func() string
}

// NewReviewService creates a new review service
func NewReviewService(entryRepo ports.EntryRepository, logger *logger.Logger) *ReviewService {
	return &ReviewService{
		entryRepo: entryRepo,
		logger:    logger,
		today:     entities.Today,
	}
}

// DueToday returns every uncompleted review whose due date is today.
// Entries studied today are excluded: their first review is tomorrow
// at the earliest, and same-day cards should not show up for review.
// Results are ordered oldest learning date first.
func (s *ReviewService) DueToday(ctx context.Context) ([]ports.DueReview, error) {
	entries, err := s.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	today := s.today()
	due := make([]ports.DueReview, 0)
	for _, entry := range entries {
		if entry.Date == today {
			continue
		}
		for i, review := range entry.Reviews {
			if review.DueDate == today && !review.Completed {
				due = append(due, ports.DueReview{
					EntryDate:   entry.Date,
					Items:       entry.Items,
					ReviewIndex: i,
					DueDate:     review.DueDate,
					Stage:       i + 1,
					Stages:      schedule.Stages,
				})
			}
		}
	}

	sort.Slice(due, func(i, j int) bool {
		return due[i].EntryDate < due[j].EntryDate
	})
	return due, nil
}

// Complete marks one review of an entry as done. Completing a review
// that is already done is a no-op, not an error.
func (s *ReviewService) Complete(ctx context.Context, entryDate string, reviewIndex int) (*entities.Entry, error) {
	if _, err := entities.ParseDate(entryDate); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.GetByDate(ctx, entryDate)
	if err != nil {
		return nil, err
	}

	if reviewIndex < 0 || reviewIndex >= len(entry.Reviews) {
		return nil, fmt.Errorf("review index %d out of range: %w", reviewIndex, entities.ErrReviewNotFound)
	}

	if entry.Reviews[reviewIndex].Completed {
		return entry, nil
	}

	entry.Reviews[reviewIndex].Completed = true
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save review completion: %w", err)
	}

	s.logger.Infow("Review completed",
		"entry_date", entryDate,
		"stage", reviewIndex+1,
		"completed_count", entry.CompletedCount(),
	)
	return entry, nil
}
