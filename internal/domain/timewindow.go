package domain

import (
	"fmt"
	"time"
)

const (
	dateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

// TimeWindow is a repeated daily slot over an inclusive date range. Dates
// are UTC midnights; times are minutes since midnight, half-open
// [StartTime, EndTime). A booking ending at 10:00 never collides with one
// starting at 10:00.
type TimeWindow struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	StartTime int       `json:"start_time"`
	EndTime   int       `json:"end_time"`
}

func (w TimeWindow) Validate() error {
	if w.StartDate.IsZero() || w.EndDate.IsZero() {
		return newValidationErr("start and end dates are required")
	}
	if w.EndDate.Before(w.StartDate) {
		return newValidationErr("end date is before start date")
	}
	if w.StartTime < 0 || w.EndTime > minutesPerDay {
		return newValidationErr("times must fall within a single day")
	}
	if w.StartTime >= w.EndTime {
		return newValidationErr("start time must be before end time")
	}
	return nil
}

// Overlaps reports whether two windows collide: the date ranges intersect
// AND the daily slots intersect. Both legs must hold; two bookings on the
// same day at disjoint hours coexist, as do same-hour bookings on
// disjoint dates.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	if w.StartDate.After(o.EndDate) || o.StartDate.After(w.EndDate) {
		return false
	}
	return w.StartTime < o.EndTime && o.StartTime < w.EndTime
}

// Days is the inclusive number of calendar days the window covers.
func (w TimeWindow) Days() int {
	return int(w.EndDate.Sub(w.StartDate).Hours()/24) + 1
}

// StartsAt is the first moment of the window: start time on the first day.
func (w TimeWindow) StartsAt() time.Time {
	return w.StartDate.Add(time.Duration(w.StartTime) * time.Minute)
}

// EndsAt is the last moment of the window: end time on the last day.
func (w TimeWindow) EndsAt() time.Time {
	return w.EndDate.Add(time.Duration(w.EndTime) * time.Minute)
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, newValidationErr(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", s))
	}
	return d, nil
}

// ParseClock parses an HH:MM string into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, newValidationErr(fmt.Sprintf("invalid time %q, want HH:MM", s))
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || h*60+m > minutesPerDay {
		return 0, newValidationErr(fmt.Sprintf("time %q out of range", s))
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
