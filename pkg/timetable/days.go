package timetable

import (
	"strings"
	"time"
)

// Weekdays are the day identifiers the timetable service is addressed by.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// DayOf returns the day identifier for t, e.g. "monday".
func DayOf(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}
