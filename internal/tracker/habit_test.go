package tracker

import (
	"reflect"
	"testing"
	"time"

	"github.com/unasp/eighthealth/pkg/wellness"
)

func newTestHabits(t *testing.T) *HabitService {
	t.Helper()
	clock := newFakeClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
	s, err := NewHabitService(newMemStore(), clock.Now)
	if err != nil {
		t.Fatalf("NewHabitService failed: %v", err)
	}
	return s
}

func TestHabitAdd(t *testing.T) {
	s := newTestHabits(t)

	h, err := s.Add("Beber 2L de água", wellness.RemedyWater)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if h.ID == "" {
		t.Error("expected a generated id")
	}
	if h.CreatedAt != "2024-03-10" {
		t.Errorf("createdAt = %q, want 2024-03-10", h.CreatedAt)
	}
	if len(s.Habits()) != 1 {
		t.Fatalf("expected 1 habit, got %d", len(s.Habits()))
	}
}

func TestHabitAdd_Invalid(t *testing.T) {
	s := newTestHabits(t)

	if _, err := s.Add("  ", wellness.RemedyWater); err == nil {
		t.Error("expected error for blank name")
	}
	if _, err := s.Add("ok", wellness.Remedy("sleep")); err == nil {
		t.Error("expected error for unknown remedy")
	}
}

func TestHabitToggle_SelfInverse(t *testing.T) {
	s := newTestHabits(t)

	h, err := s.Add("30 min de exercício", wellness.RemedyExercise)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := s.Toggle(h.ID, "2024-03-08"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	before, _ := s.Get(h.ID)

	// Toggling the same date twice must restore the original set.
	if err := s.Toggle(h.ID, "2024-03-10"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if err := s.Toggle(h.ID, "2024-03-10"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	after, _ := s.Get(h.ID)

	if !reflect.DeepEqual(before.CompletedDates, after.CompletedDates) {
		t.Fatalf("double toggle changed the set: %v -> %v", before.CompletedDates, after.CompletedDates)
	}
}

func TestHabitToggle_AddsAndRemoves(t *testing.T) {
	s := newTestHabits(t)

	h, _ := s.Add("8h de sono", wellness.RemedyRest)
	if err := s.Toggle(h.ID, "2024-03-10"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	got, _ := s.Get(h.ID)
	if !got.CompletedOn("2024-03-10") {
		t.Fatal("expected date present after first toggle")
	}

	if err := s.Toggle(h.ID, "2024-03-10"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	got, _ = s.Get(h.ID)
	if got.CompletedOn("2024-03-10") {
		t.Fatal("expected date absent after second toggle")
	}
}

func TestHabitToggle_UnknownID(t *testing.T) {
	s := newTestHabits(t)
	if err := s.Toggle("nope", "2024-03-10"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHabitRemove(t *testing.T) {
	s := newTestHabits(t)

	h, _ := s.Add("Comer vegetais", wellness.RemedyNutrition)
	if err := s.Remove(h.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(s.Habits()) != 0 {
		t.Fatal("expected no habits after remove")
	}
	if err := s.Remove(h.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on second remove, got %v", err)
	}
}

func TestHabitsSurviveRestart(t *testing.T) {
	store := newMemStore()
	clock := newFakeClock(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))

	s, err := NewHabitService(store, clock.Now)
	if err != nil {
		t.Fatalf("NewHabitService failed: %v", err)
	}
	h, _ := s.Add("15 min de sol", wellness.RemedySunlight)
	if err := s.Toggle(h.ID, "2024-03-10"); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}

	// A second service over the same storage sees the persisted state.
	s2, err := NewHabitService(store, clock.Now)
	if err != nil {
		t.Fatalf("NewHabitService failed: %v", err)
	}
	got, err := s2.Get(h.ID)
	if err != nil {
		t.Fatalf("Get after restart failed: %v", err)
	}
	if !got.CompletedOn("2024-03-10") {
		t.Fatal("expected completion to survive restart")
	}
}
