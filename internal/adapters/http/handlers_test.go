package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyloop/core/internal/adapters/repository"
	"github.com/studyloop/core/internal/application/services"
	"github.com/studyloop/core/internal/infrastructure/config"
	"github.com/studyloop/core/internal/infrastructure/logger"
	"github.com/studyloop/core/internal/ports"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type handlerFixture struct {
	echo    *echo.Echo
	entries *EntryHandler
	reviews *ReviewHandler
}

func newFixture(t *testing.T) *handlerFixture {
	t.Helper()

	log, err := logger.New(config.LoggerConfig{Level: "error", Format: "json", Output: "stdout"})
	require.NoError(t, err)

	repo, err := repository.NewEntryRepository(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	entryService := services.NewEntryService(repo, log)
	reviewService := services.NewReviewService(repo, log)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	return &handlerFixture{
		echo:    e,
		entries: NewEntryHandler(entryService, log),
		reviews: NewReviewHandler(reviewService, log),
	}
}

func (f *handlerFixture) request(method, target, body string) (*httptest.ResponseRecorder, echo.Context) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, f.echo.NewContext(req, rec)
}

func (f *handlerFixture) seed(t *testing.T, date string) {
	t.Helper()
	body := `{"date":"` + date + `","items":["something"]}`
	rec, c := f.request(http.MethodPost, "/api/v1/entries", body)
	require.NoError(t, f.entries.SaveEntry(c))
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestSaveEntryCreatedThenUpdated(t *testing.T) {
	f := newFixture(t)

	rec, c := f.request(http.MethodPost, "/api/v1/entries",
		`{"date":"2026-06-01","items":["vocab","math"]}`)
	require.NoError(t, f.entries.SaveEntry(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp SaveEntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Created)
	assert.Len(t, resp.Entry.Reviews, 7)

	rec, c = f.request(http.MethodPost, "/api/v1/entries",
		`{"date":"2026-06-01","items":["replaced"]}`)
	require.NoError(t, f.entries.SaveEntry(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Created)
	assert.Equal(t, []string{"replaced"}, resp.Entry.Items)
}

func TestSaveEntryValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing date", `{"items":["a"]}`},
		{"missing items", `{"date":"2026-06-01"}`},
		{"empty items", `{"date":"2026-06-01","items":[]}`},
		{"too many items", `{"date":"2026-06-01","items":["a","b","c","d"]}`},
		{"invalid calendar date", `{"date":"2026-02-30","items":["a"]}`},
		{"whitespace-only items", `{"date":"2026-06-01","items":["  "]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := f.request(http.MethodPost, "/api/v1/entries", tt.body)
			err := f.entries.SaveEntry(c)
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestDeleteEntry(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "2026-06-01")

	rec, c := f.request(http.MethodDelete, "/", "")
	c.SetPath("/api/v1/entries/:date")
	c.SetParamNames("date")
	c.SetParamValues("2026-06-01")
	require.NoError(t, f.entries.DeleteEntry(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, c = f.request(http.MethodDelete, "/", "")
	c.SetPath("/api/v1/entries/:date")
	c.SetParamNames("date")
	c.SetParamValues("2026-06-01")
	err := f.entries.DeleteEntry(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestListDates(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "2026-06-01")
	f.seed(t, "2026-06-03")

	rec, c := f.request(http.MethodGet, "/api/v1/entries/dates", "")
	require.NoError(t, f.entries.ListDates(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var dates []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dates))
	assert.Equal(t, []string{"2026-06-03", "2026-06-01"}, dates)
}

func TestCompleteReview(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "2026-06-01")

	rec, c := f.request(http.MethodPost, "/api/v1/reviews/complete",
		`{"entry_date":"2026-06-01","review_index":0}`)
	require.NoError(t, f.reviews.Complete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var entry struct {
		Reviews []struct {
			Completed bool `json:"completed"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.True(t, entry.Reviews[0].Completed)
}

func TestCompleteReviewErrors(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "2026-06-01")

	// Unknown entry
	_, c := f.request(http.MethodPost, "/api/v1/reviews/complete",
		`{"entry_date":"2026-07-01","review_index":0}`)
	err := f.reviews.Complete(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)

	// Index out of range
	_, c = f.request(http.MethodPost, "/api/v1/reviews/complete",
		`{"entry_date":"2026-06-01","review_index":9}`)
	err = f.reviews.Complete(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, err.(*echo.HTTPError).Code)

	// Missing index fails validation
	_, c = f.request(http.MethodPost, "/api/v1/reviews/complete",
		`{"entry_date":"2026-06-01"}`)
	err = f.reviews.Complete(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, err.(*echo.HTTPError).Code)
}

func TestGetEntry(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "2026-06-01")

	rec, c := f.request(http.MethodGet, "/", "")
	c.SetPath("/api/v1/entries/:date")
	c.SetParamNames("date")
	c.SetParamValues("2026-06-01")
	require.NoError(t, f.entries.GetEntry(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "2026-06-01", entry["date"])
}

// The concrete services must satisfy the ports the handlers consume.
var (
	_ ports.EntryService  = (*services.EntryService)(nil)
	_ ports.ReviewService = (*services.ReviewService)(nil)
)
