package ports

import (
	"context"
	"io"
	"time"

	"github.com/studyloop/core/internal/domain/entities"
)

// SaveEntryRequest creates a learning entry or replaces the items of an
// existing one for the same date.
type SaveEntryRequest struct {
	Date  string   `json:"date" validate:"required"`
	Items []string `json:"items" validate:"required,min=1,max=3"`
}

// DueReview is one review that falls due today.
type DueReview struct {
	EntryDate   string   `json:"entry_date"`
	Items       []string `json:"items"`
	ReviewIndex int      `json:"review_index"`
	DueDate     string   `json:"due_date"`
	Stage       int      `json:"stage"`
	Stages      int      `json:"stages"`
}

// ReviewProgress is the derived state of a single scheduled review.
type ReviewProgress struct {
	Stage   int                   `json:"stage"`
	DueDate string                `json:"due_date"`
	Status  entities.ReviewStatus `json:"status"`
}

// EntryProgress is the progress report row for one entry.
type EntryProgress struct {
	Date           string           `json:"date"`
	Items          []string         `json:"items"`
	CompletedCount int              `json:"completed_count"`
	Stages         int              `json:"stages"`
	Reviews        []ReviewProgress `json:"reviews"`
}

// AnalysisSnapshot is the payload pushed to the external analysis endpoint.
type AnalysisSnapshot struct {
	BatchID     string            `json:"batch_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	EntryCount  int               `json:"entry_count"`
	Entries     []*entities.Entry `json:"entries"`
}

// PushResult reports the outcome of an analysis push.
type PushResult struct {
	BatchID    string `json:"batch_id"`
	EntryCount int    `json:"entry_count"`
	Endpoint   string `json:"endpoint"`
}

// EntryService manages learning entries.
type EntryService interface {
	// Save creates or updates an entry; the bool reports whether a new
	// entry was created (as opposed to items being replaced).
	Save(ctx context.Context, req SaveEntryRequest) (*entities.Entry, bool, error)
	Get(ctx context.Context, date string) (*entities.Entry, error)
	Delete(ctx context.Context, date string) error
	Dates(ctx context.Context) ([]string, error)
}

// ReviewService surfaces and completes due reviews.
type ReviewService interface {
	DueToday(ctx context.Context) ([]DueReview, error)
	Complete(ctx context.Context, entryDate string, reviewIndex int) (*entities.Entry, error)
}

// ProgressService builds the full progress report.
type ProgressService interface {
	Report(ctx context.Context) ([]EntryProgress, error)
}

// AnalysisService pushes dataset snapshots to the analysis endpoint.
type AnalysisService interface {
	Push(ctx context.Context) (*PushResult, error)
	Enabled() bool
}

// ExportService renders the progress report as a spreadsheet.
type ExportService interface {
	WriteXLSX(ctx context.Context, w io.Writer) error
}
