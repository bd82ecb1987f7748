package report

import (
	"errors"
	"time"
)

// TimeRange is a symbolic period selector resolved against a reference day.
type TimeRange string

const (
	RangeToday     TimeRange = "today"
	RangeYesterday TimeRange = "yesterday"
	RangeThisWeek  TimeRange = "this_week"
	RangeLastWeek  TimeRange = "last_week"
	RangeThisMonth TimeRange = "this_month"
	RangeLastMonth TimeRange = "last_month"
	RangeCustom    TimeRange = "custom"
)

var (
	// ErrMissingCustomBounds is returned when a custom range lacks explicit dates.
	ErrMissingCustomBounds = errors.New("report: start date and end date are required for custom time range")
	// ErrInvalidTimeRange is returned for an unrecognized range token.
	ErrInvalidTimeRange = errors.New("report: invalid time range")
)

// Period is an inclusive date interval.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Resolve maps a time range token to a concrete [start, end] pair relative to
// today, which the caller supplies so resolution stays deterministic. Weeks
// start on Monday; month bounds follow the calendar, so February and leap
// years come out right.
func Resolve(r TimeRange, today time.Time, start, end *time.Time) (Period, error) {
	today = midnight(today)

	switch r {
	case RangeToday:
		return Period{Start: today, End: today}, nil

	case RangeYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return Period{Start: yesterday, End: yesterday}, nil

	case RangeThisWeek:
		monday := today.AddDate(0, 0, -daysSinceMonday(today))
		return Period{Start: monday, End: monday.AddDate(0, 0, 6)}, nil

	case RangeLastWeek:
		monday := today.AddDate(0, 0, -daysSinceMonday(today)-7)
		return Period{Start: monday, End: monday.AddDate(0, 0, 6)}, nil

	case RangeThisMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Period{Start: first, End: lastDayOfMonth(first)}, nil

	case RangeLastMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		prev := first.AddDate(0, -1, 0)
		return Period{Start: prev, End: lastDayOfMonth(prev)}, nil

	case RangeCustom:
		if start == nil || end == nil {
			return Period{}, ErrMissingCustomBounds
		}
		return Period{Start: midnight(*start), End: midnight(*end)}, nil

	default:
		return Period{}, ErrInvalidTimeRange
	}
}

// daysSinceMonday returns 0 for Monday through 6 for Sunday.
func daysSinceMonday(day time.Time) int {
	return (int(day.Weekday()) + 6) % 7
}

// lastDayOfMonth derives the month's final day as the first day of the next
// month minus one, so no per-month day table is needed.
func lastDayOfMonth(firstOfMonth time.Time) time.Time {
	return firstOfMonth.AddDate(0, 1, 0).AddDate(0, 0, -1)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
