package wellness

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD form used for all persisted dates.
const DateLayout = "2006-01-02"

// DateKey formats t as a YYYY-MM-DD string.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekdayName returns t's weekday as a lowercase English name, matching the
// values stored in RoutineActivity.Days.
func WeekdayName(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ParseClock parses an "HH:MM" string into minutes since midnight.
func ParseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as "HH:MM", normalizing values
// past midnight back into a day.
func FormatClock(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// MinutesOfDay converts t to minutes since its midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
