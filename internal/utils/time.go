package utils

import (
	"fmt"
	"time"
)

const DayLayout = "2006-01-02"

// FormatClock renders seconds as m:ss, or h:mm:ss from the first hour on.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ParseDay accepts 2006-01-02 or 02/01/06 and returns the day in ISO form.
func ParseDay(s string) (string, error) {
	day, err := time.Parse(DayLayout, s)
	if err != nil {
		day, err = time.Parse("02/01/06", s)
	}
	if err != nil {
		return "", fmt.Errorf("failed to parse day %q: %w", s, err)
	}
	return day.Format(DayLayout), nil
}

// Day is the calendar day of t in its own location.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// WeekKey identifies the ISO week of t.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-%02d", year, week)
}

// WeekStreak counts consecutive ISO weeks, ending with the week of now, that contain a session.
func WeekStreak(sessions []time.Time, now time.Time) int {
	weeks := make(map[string]bool)
	for _, t := range sessions {
		weeks[WeekKey(t.In(now.Location()))] = true
	}

	streak := 0
	for weeks[WeekKey(now)] {
		streak++
		now = now.AddDate(0, 0, -7)
	}
	return streak
}
