package ports

import (
	"context"

	"github.com/studyloop/core/internal/domain/entities"
)

// EntryRepository defines the interface for learning-entry persistence.
// Entries are keyed by their learning date.
type EntryRepository interface {
	// GetByDate returns the entry for a date or entities.ErrEntryNotFound.
	GetByDate(ctx context.Context, date string) (*entities.Entry, error)
	// List returns every stored entry in file order.
	List(ctx context.Context) ([]*entities.Entry, error)
	// Save inserts the entry or replaces the one with the same date.
	Save(ctx context.Context, entry *entities.Entry) error
	// Delete removes the entry for a date or returns entities.ErrEntryNotFound.
	Delete(ctx context.Context, date string) error
	// Dates returns all entry dates, newest first.
	Dates(ctx context.Context) ([]string, error)
}
