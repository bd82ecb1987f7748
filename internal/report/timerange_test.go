package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveFixedRanges(t *testing.T) {
	cases := []struct {
		name      string
		timeRange TimeRange
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"today", RangeToday, day(2024, 2, 15), day(2024, 2, 15), day(2024, 2, 15)},
		{"yesterday", RangeYesterday, day(2024, 2, 15), day(2024, 2, 14), day(2024, 2, 14)},
		{"yesterday across month", RangeYesterday, day(2024, 3, 1), day(2024, 2, 29), day(2024, 2, 29)},
		// 2024-02-14 is a Wednesday; its week runs Mon 12th to Sun 18th.
		{"this week from wednesday", RangeThisWeek, day(2024, 2, 14), day(2024, 2, 12), day(2024, 2, 18)},
		{"this week from monday", RangeThisWeek, day(2024, 2, 12), day(2024, 2, 12), day(2024, 2, 18)},
		{"this week from sunday", RangeThisWeek, day(2024, 2, 18), day(2024, 2, 12), day(2024, 2, 18)},
		{"last week", RangeLastWeek, day(2024, 2, 14), day(2024, 2, 5), day(2024, 2, 11)},
		{"this month leap february", RangeThisMonth, day(2024, 2, 15), day(2024, 2, 1), day(2024, 2, 29)},
		{"this month january", RangeThisMonth, day(2024, 1, 15), day(2024, 1, 1), day(2024, 1, 31)},
		{"last month year rollover", RangeLastMonth, day(2024, 1, 15), day(2023, 12, 1), day(2023, 12, 31)},
		{"last month plain", RangeLastMonth, day(2024, 3, 10), day(2024, 2, 1), day(2024, 2, 29)},
		{"this month december", RangeThisMonth, day(2023, 12, 5), day(2023, 12, 1), day(2023, 12, 31)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			period, err := Resolve(tc.timeRange, tc.today, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, period.Start)
			assert.Equal(t, tc.wantEnd, period.End)
		})
	}
}

func TestResolveWeekIsSevenDaysInclusive(t *testing.T) {
	period, err := Resolve(RangeThisWeek, day(2024, 2, 14), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, period.Start.Weekday())
	assert.Equal(t, 6.0, period.End.Sub(period.Start).Hours()/24)
}

func TestResolveCustom(t *testing.T) {
	start := day(2024, 1, 10)
	end := day(2024, 1, 20)

	period, err := Resolve(RangeCustom, day(2024, 2, 1), &start, &end)
	require.NoError(t, err)
	assert.Equal(t, Period{Start: start, End: end}, period)

	_, err = Resolve(RangeCustom, day(2024, 2, 1), nil, nil)
	assert.ErrorIs(t, err, ErrMissingCustomBounds)

	_, err = Resolve(RangeCustom, day(2024, 2, 1), &start, nil)
	assert.ErrorIs(t, err, ErrMissingCustomBounds)

	_, err = Resolve(RangeCustom, day(2024, 2, 1), nil, &end)
	assert.ErrorIs(t, err, ErrMissingCustomBounds)
}

func TestResolveUnknownToken(t *testing.T) {
	_, err := Resolve(TimeRange("fortnight"), day(2024, 2, 1), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestResolveIgnoresTimeOfDay(t *testing.T) {
	noon := time.Date(2024, 2, 15, 12, 30, 45, 0, time.UTC)
	period, err := Resolve(RangeToday, noon, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 2, 15), period.Start)
}

func TestResolveIdempotent(t *testing.T) {
	first, err := Resolve(RangeThisWeek, day(2024, 2, 14), nil, nil)
	require.NoError(t, err)
	second, err := Resolve(RangeThisWeek, day(2024, 2, 14), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
