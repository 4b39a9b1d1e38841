package reminder

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/unasp/eighthealth/internal/derive"
	"github.com/unasp/eighthealth/internal/storage"
	"github.com/unasp/eighthealth/internal/tracker"
	"github.com/unasp/eighthealth/pkg/wellness"
)

type memStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (m *memStore) Load(key string, v any) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *memStore) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = raw
	return nil
}

func (m *memStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

var _ storage.Store = (*memStore)(nil)

// Monday morning.
var testNow = time.Date(2024, 3, 11, 7, 0, 0, 0, time.UTC)

func day(offset int) string {
	return wellness.DateKey(testNow.AddDate(0, 0, offset))
}

func TestDueActivities(t *testing.T) {
	activities := []wellness.RoutineActivity{
		{ID: "1", Name: "Walk", StartTime: "07:00"},
		{ID: "2", Name: "Lunch", StartTime: "12:00"},
		{ID: "3", Name: "Stretch", StartTime: "07:00", Completed: true},
	}

	due := dueActivities(activities, testNow)
	if len(due) != 1 || due[0].Name != "Walk" {
		t.Fatalf("due = %v, want just Walk", due)
	}
}

func TestExpiringStreaks(t *testing.T) {
	habits := []wellness.Habit{
		{Name: "live streak, not done today", CompletedDates: []string{day(-1), day(-2)}},
		{Name: "already done today", CompletedDates: []string{day(0), day(-1)}},
		{Name: "no streak", CompletedDates: []string{day(-5)}},
		{Name: "never completed"},
	}

	got := expiringStreaks(habits, testNow)
	if len(got) != 1 || got[0] != "live streak, not done today" {
		t.Fatalf("expiring = %v, want the single at-risk habit", got)
	}
}

func TestScheduler_ChecksAndNudges(t *testing.T) {
	trk, err := tracker.NewWithClock(newMemStore(), func() time.Time { return testNow })
	if err != nil {
		t.Fatalf("tracker failed: %v", err)
	}
	if _, err := trk.Routines.Add(wellness.RoutineActivity{
		Name: "Caminhada matinal", StartTime: "07:00", EndTime: "07:30", Category: "exercise",
	}); err != nil {
		t.Fatalf("add routine: %v", err)
	}
	h, err := trk.Habits.Add("Beber água", wellness.RemedyWater)
	if err != nil {
		t.Fatalf("add habit: %v", err)
	}
	if err := trk.Habits.Toggle(h.ID, day(-1)); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	mock := &mockNotifier{}
	s := New(trk, mock)
	s.now = func() time.Time { return testNow }
	var nextName string
	s.OnNext = func(next derive.Upcoming, ok bool) {
		if ok {
			nextName = next.Activity.Name
		}
	}

	s.tick()
	if len(mock.activityCalls) != 1 || mock.activityCalls[0] != "Caminhada matinal" {
		t.Fatalf("activity reminders = %v, want [Caminhada matinal]", mock.activityCalls)
	}
	if nextName != "Caminhada matinal" {
		t.Fatalf("next activity = %q, want Caminhada matinal", nextName)
	}

	s.sendStreakNudge()
	if mock.nudgeCalls != 1 {
		t.Fatalf("nudge calls = %d, want 1", mock.nudgeCalls)
	}
	if len(mock.nudgeHabits) != 1 || mock.nudgeHabits[0] != "Beber água" {
		t.Fatalf("nudge habits = %v, want [Beber água]", mock.nudgeHabits)
	}

	// Completing the habit today silences the nudge.
	if err := trk.Habits.Toggle(h.ID, day(0)); err != nil {
		t.Fatalf("toggle today: %v", err)
	}
	s.sendStreakNudge()
	if mock.nudgeCalls != 1 {
		t.Fatalf("nudge fired with nothing at risk: %d calls", mock.nudgeCalls)
	}
}

func TestScheduler_RejectsBadNudgeTime(t *testing.T) {
	trk, err := tracker.New(newMemStore())
	if err != nil {
		t.Fatalf("tracker failed: %v", err)
	}
	s := New(trk, &mockNotifier{})
	if err := s.Start("25:00"); err == nil {
		s.Stop()
		t.Fatal("expected error for bad nudge time")
	}
}
