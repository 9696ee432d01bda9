package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func window(startDate, endDate time.Time, startTime, endTime int) TimeWindow {
	return TimeWindow{StartDate: startDate, EndDate: endDate, StartTime: startTime, EndTime: endTime}
}

func TestTimeWindow_Overlaps_SameDayTimes(t *testing.T) {
	day := date(2025, time.March, 10)

	a := window(day, day, 8*60, 10*60)

	assert.True(t, a.Overlaps(window(day, day, 9*60, 11*60)), "09:00-11:00 cuts into 08:00-10:00")
	assert.True(t, a.Overlaps(window(day, day, 8*60+30, 9*60)), "contained slot collides")
	assert.False(t, a.Overlaps(window(day, day, 10*60, 12*60)), "back-to-back slots share no minute")
	assert.False(t, a.Overlaps(window(day, day, 6*60, 8*60)), "slot ending at the start is free")
}

func TestTimeWindow_Overlaps_DateRanges(t *testing.T) {
	a := window(date(2025, time.March, 10), date(2025, time.March, 12), 9*60, 17*60)

	// Same hours, disjoint dates.
	assert.False(t, a.Overlaps(window(date(2025, time.March, 13), date(2025, time.March, 14), 9*60, 17*60)))

	// Single shared day is enough for the date leg.
	assert.True(t, a.Overlaps(window(date(2025, time.March, 12), date(2025, time.March, 14), 9*60, 17*60)))

	// Shared day but disjoint hours stays free.
	assert.False(t, a.Overlaps(window(date(2025, time.March, 12), date(2025, time.March, 14), 18*60, 20*60)))
}

func TestTimeWindow_Overlaps_Symmetric(t *testing.T) {
	a := window(date(2025, time.May, 1), date(2025, time.May, 3), 8*60, 12*60)
	b := window(date(2025, time.May, 3), date(2025, time.May, 5), 11*60, 14*60)

	assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
	assert.True(t, a.Overlaps(b))
}

func TestTimeWindow_Validate(t *testing.T) {
	day := date(2025, time.March, 10)

	valid := window(day, day, 8*60, 10*60)
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		w    TimeWindow
	}{
		{"zero dates", window(time.Time{}, time.Time{}, 8*60, 10*60)},
		{"end date before start date", window(day, date(2025, time.March, 9), 8*60, 10*60)},
		{"start time equals end time", window(day, day, 10*60, 10*60)},
		{"start time after end time", window(day, day, 11*60, 10*60)},
		{"negative start time", window(day, day, -1, 10*60)},
		{"end time past midnight", window(day, day, 8*60, 25*60)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.w.Validate(), ErrValidation)
		})
	}
}

func TestTimeWindow_Days(t *testing.T) {
	day := date(2025, time.March, 10)

	assert.Equal(t, 1, window(day, day, 8*60, 10*60).Days())
	assert.Equal(t, 3, window(day, date(2025, time.March, 12), 8*60, 10*60).Days())
}

func TestTimeWindow_Bounds(t *testing.T) {
	w := window(date(2025, time.March, 10), date(2025, time.March, 12), 9*60, 17*60)

	assert.Equal(t, time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC), w.StartsAt())
	assert.Equal(t, time.Date(2025, time.March, 12, 17, 0, 0, 0, time.UTC), w.EndsAt())
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	m, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = ParseClock("25:00")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseClock("nope")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:30", FormatClock(9*60+30))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(23*60+59))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, date(2025, time.March, 10), d)

	_, err = ParseDate("10.03.2025")
	assert.ErrorIs(t, err, ErrValidation)
}
