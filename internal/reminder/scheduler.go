// Package reminder drives time-based notifications: an every-minute check
// for routine activities that are starting, and a daily nudge for habit
// streaks that would break without a completion today.
package reminder

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/unasp/eighthealth/internal/derive"
	"github.com/unasp/eighthealth/internal/logger"
	"github.com/unasp/eighthealth/internal/tracker"
	"github.com/unasp/eighthealth/pkg/wellness"
)

// Scheduler runs the reminder cron jobs against the tracker's live data.
type Scheduler struct {
	trk      *tracker.Tracker
	notifier Notifier
	cron     *cron.Cron
	now      func() time.Time

	// OnNext, when set, receives the freshly computed next activity every
	// minute. The CLI uses it to refresh its countdown display.
	OnNext func(next derive.Upcoming, ok bool)
}

func New(trk *tracker.Tracker, notifier Notifier) *Scheduler {
	return &Scheduler{
		trk:      trk,
		notifier: notifier,
		cron:     cron.New(),
		now:      time.Now,
	}
}

// Start registers the jobs and starts the cron loop. nudgeTime is the "HH:MM"
// wall-clock time for the daily streak nudge.
func (s *Scheduler) Start(nudgeTime string) error {
	if _, err := s.cron.AddFunc("* * * * *", s.tick); err != nil {
		return err
	}

	minutes, err := wellness.ParseClock(nudgeTime)
	if err != nil {
		return fmt.Errorf("invalid nudge time %q: %w", nudgeTime, err)
	}
	spec := fmt.Sprintf("%d %d * * *", minutes%60, minutes/60)
	if _, err := s.cron.AddFunc(spec, s.sendStreakNudge); err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("Reminder scheduler started", "nudge_time", nudgeTime)
	return nil
}

// Stop halts the cron loop. Running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	logger.Info("Reminder scheduler stopped")
}

// tick runs once a minute: recompute the next activity for the countdown
// display and notify for every activity starting right now.
func (s *Scheduler) tick() {
	now := s.now()
	today := s.trk.Routines.DailyRoutines()

	if s.OnNext != nil {
		next, ok := derive.NextActivity(today, now)
		s.OnNext(next, ok)
	}

	for _, a := range dueActivities(today, now) {
		if err := s.notifier.SendActivityReminder(a.Name, a.StartTime); err != nil {
			logger.Error("Activity reminder failed", "routine_id", a.ID, "error", err)
		}
	}
}

// sendStreakNudge notifies with the habits whose streaks are at risk. No
// email goes out when nothing is at risk.
func (s *Scheduler) sendStreakNudge() {
	atRisk := expiringStreaks(s.trk.Habits.Habits(), s.now())
	if len(atRisk) == 0 {
		return
	}
	if err := s.notifier.SendStreakNudge(atRisk); err != nil {
		logger.Error("Streak nudge failed", "error", err)
	}
}

// dueActivities filters to incomplete activities starting at now's minute.
func dueActivities(activities []wellness.RoutineActivity, now time.Time) []wellness.RoutineActivity {
	minute := now.Format("15:04")
	var due []wellness.RoutineActivity
	for _, a := range activities {
		if !a.Completed && a.StartTime == minute {
			due = append(due, a)
		}
	}
	return due
}

// expiringStreaks returns the names of habits with a live streak that have
// not been completed today.
func expiringStreaks(habits []wellness.Habit, now time.Time) []string {
	today := wellness.DateKey(now)
	var names []string
	for _, h := range habits {
		if h.CompletedOn(today) {
			continue
		}
		if derive.Streak(h.CompletedDates, now) > 0 {
			names = append(names, h.Name)
		}
	}
	return names
}
