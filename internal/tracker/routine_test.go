package tracker

import (
	"testing"
	"time"

	"github.com/unasp/eighthealth/pkg/wellness"
)

// 2024-03-11 was a Monday.
var monday = time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)

func newTestRoutines(t *testing.T, clock *fakeClock) *RoutineService {
	t.Helper()
	s, err := NewRoutineService(newMemStore(), clock.Now)
	if err != nil {
		t.Fatalf("NewRoutineService failed: %v", err)
	}
	return s
}

func TestRoutineAdd(t *testing.T) {
	s := newTestRoutines(t, newFakeClock(monday))

	a, err := s.Add(wellness.RoutineActivity{
		Name:      "Caminhada matinal",
		StartTime: "07:00",
		EndTime:   "07:30",
		Category:  wellness.Category(wellness.RemedyExercise),
		Completed: true, // must be forced back to false
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if a.ID == "" {
		t.Error("expected a generated id")
	}
	if a.Completed {
		t.Error("new routines must start incomplete")
	}
}

func TestRoutineAdd_Invalid(t *testing.T) {
	s := newTestRoutines(t, newFakeClock(monday))

	cases := []wellness.RoutineActivity{
		{Name: "", StartTime: "07:00", EndTime: "07:30", Category: "exercise"},
		{Name: "x", StartTime: "25:00", EndTime: "07:30", Category: "exercise"},
		{Name: "x", StartTime: "07:00", EndTime: "bad", Category: "exercise"},
		{Name: "x", StartTime: "07:00", EndTime: "07:30", Category: "gaming"},
	}
	for i, c := range cases {
		if _, err := s.Add(c); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestDailyRoutines_DayFilter(t *testing.T) {
	clock := newFakeClock(monday)
	s := newTestRoutines(t, clock)

	mondayOnly, _ := s.Add(wellness.RoutineActivity{
		Name: "Academia", StartTime: "18:00", EndTime: "18:30",
		Category: "exercise", Days: []string{"monday"},
	})
	tuesdayOnly, _ := s.Add(wellness.RoutineActivity{
		Name: "Meditação", StartTime: "12:30", EndTime: "12:45",
		Category: "rest", Days: []string{"tuesday"},
	})
	everyDay, _ := s.Add(wellness.RoutineActivity{
		Name: "Café da manhã", StartTime: "07:45", EndTime: "08:15",
		Category: "nutrition",
	})

	got := s.DailyRoutines()
	ids := map[string]bool{}
	for _, a := range got {
		ids[a.ID] = true
	}
	if !ids[mondayOnly.ID] {
		t.Error("monday-only routine missing on Monday")
	}
	if ids[tuesdayOnly.ID] {
		t.Error("tuesday-only routine present on Monday")
	}
	if !ids[everyDay.ID] {
		t.Error("no-days routine missing; empty days means every day")
	}

	// Tuesday flips the filter.
	clock.Set(monday.AddDate(0, 0, 1))
	got = s.DailyRoutines()
	ids = map[string]bool{}
	for _, a := range got {
		ids[a.ID] = true
	}
	if ids[mondayOnly.ID] || !ids[tuesdayOnly.ID] || !ids[everyDay.ID] {
		t.Errorf("unexpected Tuesday set: %v", ids)
	}
}

func TestDailyRoutines_SortedByStartTime(t *testing.T) {
	s := newTestRoutines(t, newFakeClock(monday))

	times := []string{"19:00", "06:35", "12:30", "06:35", "21:30"}
	for _, at := range times {
		if _, err := s.Add(wellness.RoutineActivity{
			Name: "a@" + at, StartTime: at, EndTime: "23:00", Category: "other",
		}); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got := s.DailyRoutines()
	for i := 1; i < len(got); i++ {
		if got[i-1].StartTime > got[i].StartTime {
			t.Fatalf("not sorted at %d: %s > %s", i, got[i-1].StartTime, got[i].StartTime)
		}
	}
	// Stable for ties: the two 06:35 entries keep insertion order.
	if got[0].Name != "a@06:35" || got[1].Name != "a@06:35" {
		t.Fatalf("expected the 06:35 pair first, got %s, %s", got[0].Name, got[1].Name)
	}
}

func TestRoutineUpdate_ShallowMerge(t *testing.T) {
	s := newTestRoutines(t, newFakeClock(monday))

	a, _ := s.Add(wellness.RoutineActivity{
		Name: "Jantar", StartTime: "19:00", EndTime: "19:30",
		Category: "nutrition", Days: []string{"monday", "tuesday"},
	})

	newStart := "19:15"
	if err := s.Update(a.ID, RoutineUpdate{StartTime: &newStart}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := s.Get(a.ID)
	if got.StartTime != "19:15" {
		t.Errorf("start = %q, want 19:15", got.StartTime)
	}
	if got.Name != "Jantar" || got.EndTime != "19:30" || len(got.Days) != 2 {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestMarkCompleted(t *testing.T) {
	s := newTestRoutines(t, newFakeClock(monday))

	a, _ := s.Add(wellness.RoutineActivity{
		Name: "Banho de sol", StartTime: "15:00", EndTime: "15:20", Category: "sunlight",
	})
	if err := s.MarkCompleted(a.ID, true); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}
	got, _ := s.Get(a.ID)
	if !got.Completed {
		t.Fatal("expected completed=true")
	}

	if err := s.MarkCompleted(a.ID, false); err != nil {
		t.Fatalf("MarkCompleted failed: %v", err)
	}
	got, _ = s.Get(a.ID)
	if got.Completed {
		t.Fatal("expected completed=false")
	}
}

func TestRoutineRemove(t *testing.T) {
	s := newTestRoutines(t, newFakeClock(monday))

	a, _ := s.Add(wellness.RoutineActivity{
		Name: "Chá de camomila", StartTime: "21:30", EndTime: "21:45", Category: "rest",
	})
	if err := s.Remove(a.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := s.Remove(a.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
