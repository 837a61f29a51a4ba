package entities

import (
	"errors"
	"strings"
	"time"
)

// Common errors
var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrNoItems            = errors.New("entry requires at least one study item")
	ErrTooManyItems       = errors.New("entry holds at most three study items")
	ErrInvalidDate        = errors.New("invalid date")
	ErrAnalysisNotEnabled = errors.New("analysis endpoint is not configured")
)

// DateLayout is the canonical key format for learning entries.
const DateLayout = "2006-01-02"

// MaxItems is the maximum number of study items per entry.
const MaxItems = 3

// ReviewStatus describes where a single review stands relative to today.
type ReviewStatus string

const (
	ReviewStatusCompleted ReviewStatus = "completed"
	ReviewStatusOverdue   ReviewStatus = "overdue"
	ReviewStatusPending   ReviewStatus = "pending"
)

// Review is one scheduled repetition of a learning entry.
type Review struct {
	DueDate   string `json:"dueDate"`
	Completed bool   `json:"completed"`
}

// Status derives the review state against a reference date (YYYY-MM-DD).
func (r Review) Status(today string) ReviewStatus {
	switch {
	case r.Completed:
		return ReviewStatusCompleted
	case r.DueDate < today:
		return ReviewStatusOverdue
	default:
		return ReviewStatusPending
	}
}

// Entry is a single day's learning record with its review schedule.
// The date string is the unique key; the JSON shape matches the flat
// data file on disk.
type Entry struct {
	Date    string   `json:"date"`
	Items   []string `json:"items"`
	Reviews []Review `json:"reviews"`
}

// CompletedCount returns how many of the entry's reviews are done.
func (e *Entry) CompletedCount() int {
	n := 0
	for _, r := range e.Reviews {
		if r.Completed {
			n++
		}
	}
	return n
}

// ParseDate validates a YYYY-MM-DD string and rejects impossible
// calendar dates such as 2024-02-30.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// CleanItems drops blank and whitespace-only items, preserving order.
func CleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Today formats the current local date as an entry key.
func Today() string {
	return time.Now().Format(DateLayout)
}
