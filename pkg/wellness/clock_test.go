package wellness

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"07:00", 420, false},
		{"22:30", 1350, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}

	for _, c := range cases {
		got, err := ParseClock(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseClock(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFormatClock_WrapsPastMidnight(t *testing.T) {
	if got := FormatClock(1500); got != "01:00" {
		t.Errorf("FormatClock(1500) = %q, want 01:00", got)
	}
	if got := FormatClock(420); got != "07:00" {
		t.Errorf("FormatClock(420) = %q, want 07:00", got)
	}
}

func TestWeekdayName(t *testing.T) {
	// 2024-01-01 was a Monday.
	d := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := WeekdayName(d); got != "monday" {
		t.Errorf("WeekdayName = %q, want monday", got)
	}
	if got := DateKey(d); got != "2024-01-01" {
		t.Errorf("DateKey = %q, want 2024-01-01", got)
	}
}
