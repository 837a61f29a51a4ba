package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyloop/core/internal/domain/entities"
)

func TestBuildSchedule(t *testing.T) {
	reviews, err := Build("2026-01-01")
	require.NoError(t, err)
	require.Len(t, reviews, Stages)

	expected := []string{
		"2026-01-02",
		"2026-01-03",
		"2026-01-05",
		"2026-01-08",
		"2026-01-15",
		"2026-01-22",
		"2026-01-31",
	}
	for i, r := range reviews {
		assert.Equal(t, expected[i], r.DueDate)
		assert.False(t, r.Completed)
	}
}

func TestBuildCrossesMonthAndYearBoundaries(t *testing.T) {
	reviews, err := Build("2025-12-28")
	require.NoError(t, err)

	assert.Equal(t, "2025-12-29", reviews[0].DueDate)
	assert.Equal(t, "2026-01-04", reviews[3].DueDate)
	assert.Equal(t, "2026-01-27", reviews[6].DueDate)
}

func TestBuildRejectsInvalidDates(t *testing.T) {
	for _, date := range []string{"", "2026-02-30", "2026-13-01", "26-01-01", "not-a-date"} {
		_, err := Build(date)
		assert.ErrorIs(t, err, entities.ErrInvalidDate, "date %q", date)
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, time.January))
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 30, DaysInMonth(2026, time.April))
}
