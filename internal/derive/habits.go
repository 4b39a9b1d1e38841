package derive

import (
	"time"

	"github.com/unasp/eighthealth/pkg/wellness"
)

// Streak counts consecutive days with a completion, walking backward from
// today. A streak still counts as current when today has no completion yet;
// the walk then starts at yesterday. Empty input is a zero streak.
func Streak(completedDates []string, today time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(completedDates))
	for _, d := range completedDates {
		set[d] = struct{}{}
	}

	day := today
	if _, ok := set[wellness.DateKey(day)]; !ok {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := set[wellness.DateKey(day)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CompletionLevel summarizes how much of the active remedy set was satisfied
// on a day as an integer 0-4: ceil(completed/total*4), or 0 when nothing was
// completed. The calendar heat map maps each level to a color.
func CompletionLevel(completed, totalActive int) int {
	if completed <= 0 || totalActive <= 0 {
		return 0
	}
	if completed >= totalActive {
		return 4
	}
	return (completed*4 + totalActive - 1) / totalActive
}

// DayLevels computes the completion level of every date touched by the given
// habits, against the active remedy set. A remedy counts as completed on a
// date when at least one of its habits was completed that date.
func DayLevels(habits []wellness.Habit, active []wellness.Remedy) map[string]int {
	activeSet := make(map[wellness.Remedy]struct{}, len(active))
	for _, r := range active {
		activeSet[r] = struct{}{}
	}

	// date -> set of active remedies completed that date
	byDate := map[string]map[wellness.Remedy]struct{}{}
	for _, h := range habits {
		if _, ok := activeSet[h.Remedy]; !ok {
			continue
		}
		for _, d := range h.CompletedDates {
			if byDate[d] == nil {
				byDate[d] = map[wellness.Remedy]struct{}{}
			}
			byDate[d][h.Remedy] = struct{}{}
		}
	}

	levels := make(map[string]int, len(byDate))
	for d, remedies := range byDate {
		levels[d] = CompletionLevel(len(remedies), len(active))
	}
	return levels
}

// ActivityStats aggregates tracked days over a window for the consistency
// display.
type ActivityStats struct {
	TrackedDays   int `json:"tracked_days"`
	CompletedDays int `json:"completed_days"`
	Percentage    int `json:"percentage"`
}

// Last30DayStats aggregates the rolling 30-day window ending today.
func Last30DayStats(levels map[string]int, today time.Time) ActivityStats {
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -30)
	return windowStats(levels, func(d time.Time) bool {
		return !d.Before(start) && !d.After(end)
	})
}

// MonthStats aggregates one calendar month.
func MonthStats(levels map[string]int, year int, month time.Month) ActivityStats {
	return windowStats(levels, func(d time.Time) bool {
		return d.Year() == year && d.Month() == month
	})
}

func windowStats(levels map[string]int, within func(time.Time) bool) ActivityStats {
	var stats ActivityStats
	for date, level := range levels {
		d, err := time.Parse(wellness.DateLayout, date)
		if err != nil || !within(d) {
			continue
		}
		stats.TrackedDays++
		if level > 0 {
			stats.CompletedDays++
		}
	}
	if stats.TrackedDays > 0 {
		stats.Percentage = int(float64(stats.CompletedDays)/float64(stats.TrackedDays)*100 + 0.5)
	}
	return stats
}
