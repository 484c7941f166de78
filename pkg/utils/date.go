package utils

import (
	"log"
	"time"
)

const DateLayout = "2006-01-02"

// LoadLocation returns the named location, falling back to UTC when it is unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Failed to load location %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Today returns midnight of the current day in loc.
func Today(loc *time.Location) time.Time {
	return StartOfDay(time.Now().In(loc))
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, loc)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
