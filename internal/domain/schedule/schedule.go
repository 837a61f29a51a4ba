// Package schedule computes spaced-repetition review dates on the
// Ebbinghaus forgetting curve with a fixed interval set.
package schedule

import (
	"time"

	"github.com/studyloop/core/internal/domain/entities"
)

// Intervals are the day offsets after the learning date at which a
// review falls due. Seven stages, roughly doubling.
var Intervals = [7]int{1, 2, 4, 7, 14, 21, 30}

// Stages is the number of reviews every entry carries.
const Stages = len(Intervals)

// Build returns the full review schedule for a learning date, all
// reviews uncompleted.
func Build(date string) ([]entities.Review, error) {
	t, err := entities.ParseDate(date)
	if err != nil {
		return nil, err
	}

	reviews := make([]entities.Review, 0, Stages)
	for _, days := range Intervals {
		reviews = append(reviews, entities.Review{
			DueDate: t.AddDate(0, 0, days).Format(entities.DateLayout),
		})
	}
	return reviews, nil
}

// DaysInMonth returns how many days the given month has.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
