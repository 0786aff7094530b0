package util

import (
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeDonkiMinutePrecision(t *testing.T) {
	got, ok := ParseTime("2024-05-01T12:24Z")
	if !ok {
		t.Fatalf("expected ok")
	}
	want := time.Date(2024, 5, 1, 12, 24, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeSWPC(t *testing.T) {
	got, ok := ParseTime("2024-05-01 12:24:00.000")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Minute() != 24 || got.Hour() != 12 {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got := ParseTimeDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestDateRange(t *testing.T) {
	now := time.Date(2024, 10, 10, 15, 0, 0, 0, time.UTC)
	start, end := DateRange(now, 7)
	if start != "2024-10-03" || end != "2024-10-10" {
		t.Fatalf("unexpected range %s..%s", start, end)
	}
}
