package derive

import (
	"testing"
	"time"

	"github.com/unasp/eighthealth/pkg/wellness"
)

var today = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func day(offset int) string {
	return wellness.DateKey(today.AddDate(0, 0, offset))
}

func TestStreak(t *testing.T) {
	cases := []struct {
		name  string
		dates []string
		want  int
	}{
		{"three consecutive ending today", []string{day(0), day(-1), day(-2)}, 3},
		{"yesterday only still counts", []string{day(-1)}, 1},
		{"empty set", nil, 0},
		{"gap breaks the walk", []string{day(0), day(-2), day(-3)}, 1},
		{"stale completions", []string{day(-5), day(-6)}, 0},
		{"today plus older block", []string{day(0), day(-1), day(-3), day(-4)}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Streak(c.dates, today); got != c.want {
				t.Errorf("Streak(%v) = %d, want %d", c.dates, got, c.want)
			}
		})
	}
}

func TestCompletionLevel(t *testing.T) {
	cases := []struct {
		completed, total, want int
	}{
		{0, 5, 0},
		{1, 4, 1},
		{1, 8, 1}, // ceil(0.5)
		{2, 4, 2},
		{3, 4, 3},
		{4, 4, 4},
		{5, 4, 4}, // clamped
		{1, 0, 0}, // degenerate
	}
	for _, c := range cases {
		if got := CompletionLevel(c.completed, c.total); got != c.want {
			t.Errorf("CompletionLevel(%d, %d) = %d, want %d", c.completed, c.total, got, c.want)
		}
	}
}

func TestDayLevels(t *testing.T) {
	active := []wellness.Remedy{wellness.RemedyWater, wellness.RemedyExercise}
	habits := []wellness.Habit{
		{ID: "h1", Remedy: wellness.RemedyWater, CompletedDates: []string{day(0), day(-1)}},
		{ID: "h2", Remedy: wellness.RemedyWater, CompletedDates: []string{day(0)}}, // same remedy, same day
		{ID: "h3", Remedy: wellness.RemedyExercise, CompletedDates: []string{day(0)}},
		{ID: "h4", Remedy: wellness.RemedyTrust, CompletedDates: []string{day(0)}}, // inactive remedy
	}

	levels := DayLevels(habits, active)

	// Today: both active remedies hit -> level 4. Yesterday: one of two -> 2.
	if got := levels[day(0)]; got != 4 {
		t.Errorf("level today = %d, want 4", got)
	}
	if got := levels[day(-1)]; got != 2 {
		t.Errorf("level yesterday = %d, want 2", got)
	}
}

func TestLast30DayStats(t *testing.T) {
	levels := map[string]int{
		day(0):   2,
		day(-10): 1,
		day(-29): 3,
		day(-40): 4, // outside the window
		day(-15): 0, // tracked but not completed
	}

	stats := Last30DayStats(levels, today)
	if stats.TrackedDays != 4 {
		t.Errorf("tracked = %d, want 4", stats.TrackedDays)
	}
	if stats.CompletedDays != 3 {
		t.Errorf("completed = %d, want 3", stats.CompletedDays)
	}
	if stats.Percentage != 75 {
		t.Errorf("percentage = %d, want 75", stats.Percentage)
	}
}

func TestMonthStats(t *testing.T) {
	levels := map[string]int{
		"2024-03-01": 1,
		"2024-03-15": 0,
		"2024-02-28": 2,
	}

	stats := MonthStats(levels, 2024, time.March)
	if stats.TrackedDays != 2 || stats.CompletedDays != 1 || stats.Percentage != 50 {
		t.Errorf("march stats = %+v, want {2 1 50}", stats)
	}
}
