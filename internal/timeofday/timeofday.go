// Package timeofday converts between clock strings and minute-of-day
// integers. All sorting and comparison happens on the integer form.
package timeofday

import (
	"fmt"
	"strings"
	"time"
)

const MinutesPerDay = 24 * 60

var layouts = []string{"15:04", "3:04 PM", "3:04PM", "03:04 PM"}

// Parse accepts "HH:MM" (24h) or "h:MM AM/PM" and returns minutes since midnight.
func Parse(s string) (int, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", s)
}

// Format24h renders a minute-of-day as "HH:MM".
func Format24h(minute int) string {
	m := normalize(minute)
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Format12h renders a minute-of-day as "h:MM AM".
func Format12h(minute int) string {
	m := normalize(minute)
	h, mm := m/60, m%60

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, mm, suffix)
}

// Of returns the minute-of-day of t in its own location.
func Of(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func normalize(minute int) int {
	m := minute % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}
