package derive

import (
	"fmt"
	"sort"
	"time"

	"github.com/unasp/eighthealth/pkg/wellness"
)

// Upcoming is the next scheduled activity plus a human-readable countdown.
type Upcoming struct {
	Activity     wellness.RoutineActivity `json:"activity"`
	MinutesUntil int                      `json:"minutes_until"`
	Countdown    string                   `json:"countdown"`
	Tomorrow     bool                     `json:"tomorrow"`
}

// NextActivity picks the first incomplete activity starting strictly after
// now. When nothing remains today it wraps to the earliest activity,
// treated as tomorrow's. Returns false when every activity is completed or
// the list is empty.
func NextActivity(activities []wellness.RoutineActivity, now time.Time) (Upcoming, bool) {
	type timed struct {
		activity wellness.RoutineActivity
		minutes  int
	}

	var pending []timed
	for _, a := range activities {
		if a.Completed {
			continue
		}
		m, err := wellness.ParseClock(a.StartTime)
		if err != nil {
			continue
		}
		pending = append(pending, timed{activity: a, minutes: m})
	}
	if len(pending) == 0 {
		return Upcoming{}, false
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].minutes < pending[j].minutes
	})

	nowMin := wellness.MinutesOfDay(now)
	selected := pending[0]
	tomorrow := true
	for _, p := range pending {
		if p.minutes > nowMin {
			selected = p
			tomorrow = false
			break
		}
	}

	at := selected.minutes
	if tomorrow {
		at += 24 * 60
	}
	diff := at - nowMin
	if diff < 0 {
		diff += 24 * 60
	}

	return Upcoming{
		Activity:     selected.activity,
		MinutesUntil: diff,
		Countdown:    FormatCountdown(diff),
		Tomorrow:     tomorrow,
	}, true
}

// FormatCountdown renders minutes as "1h 5min", dropping the hour part when
// it is zero.
func FormatCountdown(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dmin", h, m)
	}
	return fmt.Sprintf("%dmin", m)
}
