package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/studyloop/core/internal/domain/entities"
)

// EntryRepository persists learning entries as a single JSON array in a
// flat file. The whole file is read and rewritten on every operation;
// a process-local mutex serializes access.
type EntryRepository struct {
	path string
	mu   sync.RWMutex
}

// NewEntryRepository creates a file-backed entry repository, creating
// the parent directory if needed.
func NewEntryRepository(path string) (*EntryRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return &EntryRepository{path: path}, nil
}

// load reads the full data file. A missing file is an empty dataset.
func (r *EntryRepository) load() ([]*entities.Entry, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var all []*entities.Entry
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("data file is not a valid entry array: %w", err)
	}
	return all, nil
}

// store rewrites the full data file. The write goes through a temp file
// and rename so a crash mid-write cannot truncate the dataset.
func (r *EntryRepository) store(all []*entities.Entry) error {
	if all == nil {
		all = []*entities.Entry{}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// GetByDate returns the entry for a date.
func (r *EntryRepository) GetByDate(ctx context.Context, date string) (*entities.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if e.Date == date {
			return e, nil
		}
	}
	return nil, entities.ErrEntryNotFound
}

// List returns every stored entry in file order.
func (r *EntryRepository) List(ctx context.Context) ([]*entities.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

// Save inserts the entry or replaces the one with the same date.
func (r *EntryRepository) Save(ctx context.Context, entry *entities.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i, e := range all {
		if e.Date == entry.Date {
			all[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, entry)
	}
	return r.store(all)
}

// Delete removes the entry for a date.
func (r *EntryRepository) Delete(ctx context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load()
	if err != nil {
		return err
	}

	kept := all[:0]
	found := false
	for _, e := range all {
		if e.Date == date {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return entities.ErrEntryNotFound
	}
	return r.store(kept)
}

// Dates returns all entry dates, newest first.
func (r *EntryRepository) Dates(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all, err := r.load()
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(all))
	for _, e := range all {
		dates = append(dates, e.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}
