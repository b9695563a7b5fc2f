package engine

import (
	"fmt"
	"strings"
	"time"
)

const (
	dayLayout = "2006-01-02"

	// browserDayLayout is what Date.toDateString() produced in saves exported from the web app.
	browserDayLayout = "Mon Jan 02 2006"
)

// Day is a calendar day without time of day. The zero Day means "never".
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the calendar day of t in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

func (d Day) IsZero() bool {
	return d == Day{}
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday of the day.
func (d Day) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC).Weekday()
}

// ParseDay accepts YYYY-MM-DD and the browser toDateString form. Empty input is the zero Day.
func ParseDay(s string) (Day, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Day{}, nil
	}
	for _, layout := range []string{dayLayout, browserDayLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), nil
		}
	}
	return Day{}, fmt.Errorf("invalid day: %q", s)
}
