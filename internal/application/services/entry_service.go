package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/studyloop/core/internal/domain/entities"
	"github.com/studyloop/core/internal/domain/schedule"
	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

// EntryService handles learning-entry operations
type EntryService struct {
	entryRepo ports.EntryRepository
	logger    *logger.Logger
}

// NewEntryService creates a new entry service
func NewEntryService(entryRepo ports.EntryRepository, logger *logger.Logger) *EntryService {
	return &EntryService{
		entryRepo: entryRepo,
		logger:    logger,
	}
}

// Save creates a learning entry for a date, or replaces the items of an
// existing entry. Replacing items keeps the original review schedule:
// re-studying the same day does not reset review progress.
func (s *EntryService) Save(ctx context.Context, req ports.SaveEntryRequest) (*entities.Entry, bool, error) {
	if _, err := entities.ParseDate(req.Date); err != nil {
		return nil, false, fmt.Errorf("invalid entry date %q: %w", req.Date, err)
	}

	items := entities.CleanItems(req.Items)
	if len(items) == 0 {
		return nil, false, entities.ErrNoItems
	}
	if len(items) > entities.MaxItems {
		return nil, false, entities.ErrTooManyItems
	}

	existing, err := s.entryRepo.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, entities.ErrEntryNotFound) {
		return nil, false, fmt.Errorf("failed to look up entry: %w", err)
	}

	if existing != nil {
		existing.Items = items
		if err := s.entryRepo.Save(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("failed to update entry: %w", err)
		}
		s.logger.LogEntryMutation("update", existing.Date, len(items))
		return existing, false, nil
	}

	reviews, err := schedule.Build(req.Date)
	if err != nil {
		return nil, false, err
	}

	entry := &entities.Entry{
		Date:    req.Date,
		Items:   items,
		Reviews: reviews,
	}
	if err := s.entryRepo.Save(ctx, entry); err != nil {
		return nil, false, fmt.Errorf("failed to create entry: %w", err)
	}

	s.logger.LogEntryMutation("create", entry.Date, len(items))
	return entry, true, nil
}

// Get retrieves the entry for a date
func (s *EntryService) Get(ctx context.Context, date string) (*entities.Entry, error) {
	if _, err := entities.ParseDate(date); err != nil {
		return nil, err
	}
	return s.entryRepo.GetByDate(ctx, date)
}

// Delete removes the entry for a date
func (s *EntryService) Delete(ctx context.Context, date string) error {
	if _, err := entities.ParseDate(date); err != nil {
		return err
	}
	if err := s.entryRepo.Delete(ctx, date); err != nil {
		return err
	}
	s.logger.LogEntryMutation("delete", date, 0)
	return nil
}

// Dates lists all entry dates, newest first
func (s *EntryService) Dates(ctx context.Context) ([]string, error) {
	return s.entryRepo.Dates(ctx)
}
