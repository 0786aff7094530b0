package util

import (
	"time"
)

// layouts accepted for upstream timestamps. DONKI emits minute-precision
// ISO-8601 with a Z suffix ("2024-05-01T12:24Z"); SWPC products use a
// space-separated form without zone ("2024-05-01 12:24:00.000").
var layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
}

// ParseTime parses an upstream timestamp string. Returns (t, true) if any
// known layout worked.
func ParseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseTimeDefault parses time or returns default if empty/invalid.
func ParseTimeDefault(s string, def time.Time) time.Time {
	if t, ok := ParseTime(s); ok {
		return t
	}
	return def
}

// DateRange returns the [now-days, now] query window formatted as
// YYYY-MM-DD, the format the DONKI endpoints expect.
func DateRange(now time.Time, days int) (string, string) {
	start := now.AddDate(0, 0, -days)
	return start.Format("2006-01-02"), now.Format("2006-01-02")
}
