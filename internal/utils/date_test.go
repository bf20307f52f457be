package utils

import (
	"errors"
	"testing"
	"time"
)

func TestToDayKey_IgnoresTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "midnight",
			input:    time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local),
			expected: "2025-03-14",
		},
		{
			name:     "just before midnight",
			input:    time.Date(2025, 3, 14, 23, 59, 59, 999999999, time.Local),
			expected: "2025-03-14",
		},
		{
			name:     "single digit month and day are zero padded",
			input:    time.Date(2025, 1, 2, 12, 0, 0, 0, time.Local),
			expected: "2025-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDayKey(tt.input); got != tt.expected {
				t.Errorf("ToDayKey(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToDayKey_NoUTCShift(t *testing.T) {
	// A timestamp whose UTC date differs from its local date must format as
	// the local date.
	loc := time.FixedZone("UTC+13", 13*60*60)
	in := time.Date(2025, 6, 1, 0, 30, 0, 0, loc) // 2025-05-31 in UTC
	if got := ToDayKey(in); got != "2025-06-01" {
		t.Errorf("ToDayKey(%v) = %q, want %q", in, got, "2025-06-01")
	}
}

func TestFromDayKey_RoundTrip(t *testing.T) {
	keys := []string{
		"2025-01-01",
		"2025-02-28",
		"2024-02-29", // leap day
		"2025-12-31",
		"1999-06-15",
	}
	for _, key := range keys {
		parsed, err := FromDayKey(key)
		if err != nil {
			t.Fatalf("FromDayKey(%q) returned error: %v", key, err)
		}
		if got := ToDayKey(parsed); got != key {
			t.Errorf("round trip of %q = %q", key, got)
		}
		if h, m, s := parsed.Clock(); h != 0 || m != 0 || s != 0 {
			t.Errorf("FromDayKey(%q) is not midnight: %v", key, parsed)
		}
	}
}

func TestFromDayKey_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"wrong separator", "2025/03/14"},
		{"missing padding", "2025-3-4"},
		{"invalid month", "2025-13-01"},
		{"invalid day", "2025-02-30"},
		{"non-leap february 29", "2025-02-29"},
		{"trailing garbage", "2025-03-14T10:00"},
		{"not a date", "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromDayKey(tt.key)
			if err == nil {
				t.Fatalf("FromDayKey(%q) succeeded, want error", tt.key)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("FromDayKey(%q) error = %T, want *ParseError", tt.key, err)
			}
		})
	}
}

func TestStartOfLocalDay(t *testing.T) {
	in := time.Date(2025, 7, 4, 18, 45, 12, 345, time.Local)
	got := StartOfLocalDay(in)
	want := time.Date(2025, 7, 4, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("StartOfLocalDay(%v) = %v, want %v", in, got, want)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		key      string
		n        int
		expected string
	}{
		{"2025-03-14", 1, "2025-03-15"},
		{"2025-03-14", -6, "2025-03-08"},
		{"2025-02-28", 1, "2025-03-01"},
		{"2024-02-28", 1, "2024-02-29"},
		{"2025-01-01", -1, "2024-12-31"},
	}
	for _, tt := range tests {
		if got := AddDays(tt.key, tt.n); got != tt.expected {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tt.key, tt.n, got, tt.expected)
		}
	}
}
