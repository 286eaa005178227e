package queries

import (
	"errors"
	"time"
)

// ErrInvalidPeriod is returned when a finished-orders query names an unknown
// reporting period.
var ErrInvalidPeriod = errors.New("unknown reporting period")

// Period is a rolling reporting window for finished-order dashboards.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodLastWeek  Period = "lastWeek"
	PeriodLastMonth Period = "lastMonth"
)

// Cutoff returns the inclusive lower bound of the window, relative to now.
// Today means the start of the current calendar day; week and month are
// rolling windows.
func (p Period) Cutoff(now time.Time) (time.Time, error) {
	switch p {
	case PeriodToday:
		year, month, day := now.Date()
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), nil
	case PeriodLastWeek:
		return now.AddDate(0, 0, -7), nil
	case PeriodLastMonth:
		return now.AddDate(0, -1, 0), nil
	default:
		return time.Time{}, ErrInvalidPeriod
	}
}
