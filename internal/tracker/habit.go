package tracker

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unasp/eighthealth/internal/logger"
	"github.com/unasp/eighthealth/internal/storage"
	"github.com/unasp/eighthealth/pkg/wellness"
)

type habitBlob struct {
	Schema int              `json:"schema,omitempty"`
	Habits []wellness.Habit `json:"habits"`
}

// HabitService owns the habit list. Completion is a per-habit set of dates
// with toggle semantics: presence flips.
type HabitService struct {
	store storage.Store
	now   func() time.Time
	obs   observers

	mu    sync.RWMutex
	state habitBlob
}

func NewHabitService(store storage.Store, now func() time.Time) (*HabitService, error) {
	s := &HabitService{store: store, now: now}
	found, err := store.Load(keyHabits, &s.state)
	if err != nil {
		return nil, err
	}
	if !found {
		s.state = habitBlob{Schema: schemaVersion}
	}
	return s, nil
}

func (s *HabitService) Subscribe(fn func()) func() {
	return s.obs.subscribe(fn)
}

// Add creates a habit with a fresh id and no completions.
func (s *HabitService) Add(name string, remedy wellness.Remedy) (wellness.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return wellness.Habit{}, fmt.Errorf("habit name is required")
	}
	if !remedy.Valid() {
		return wellness.Habit{}, fmt.Errorf("unknown remedy %q", remedy)
	}

	h := wellness.Habit{
		ID:        uuid.NewString(),
		Name:      name,
		Remedy:    remedy,
		CreatedAt: wellness.DateKey(s.now()),
	}

	s.mu.Lock()
	s.state.Habits = append(s.state.Habits, h)
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return wellness.Habit{}, err
	}
	logger.Info("Habit added", "habit_id", h.ID, "name", h.Name, "remedy", h.Remedy)
	s.obs.notify()
	return h, nil
}

func (s *HabitService) Remove(id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.state.Habits = append(s.state.Habits[:idx], s.state.Habits[idx+1:]...)
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// Toggle flips membership of date in the habit's completed set: absent dates
// are added, present ones removed. Calling it twice restores the set.
func (s *HabitService) Toggle(id, date string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	h := &s.state.Habits[idx]
	removed := false
	for i, d := range h.CompletedDates {
		if d == date {
			h.CompletedDates = append(h.CompletedDates[:i], h.CompletedDates[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		h.CompletedDates = append(h.CompletedDates, date)
	}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// Habits returns a snapshot of all habits.
func (s *HabitService) Habits() []wellness.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]wellness.Habit, len(s.state.Habits))
	for i, h := range s.state.Habits {
		h.CompletedDates = append([]string(nil), h.CompletedDates...)
		out[i] = h
	}
	return out
}

func (s *HabitService) Get(id string) (wellness.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return wellness.Habit{}, ErrNotFound
	}
	h := s.state.Habits[idx]
	h.CompletedDates = append([]string(nil), h.CompletedDates...)
	return h, nil
}

func (s *HabitService) Reset() error {
	s.mu.Lock()
	s.state = habitBlob{Schema: schemaVersion}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	logger.Debug("Habit store reset")
	s.obs.notify()
	return nil
}

// Seed installs pre-built habits, bypassing Add. The demo loader uses this
// to install habits with completion history in one shot.
func (s *HabitService) Seed(habits []wellness.Habit) error {
	s.mu.Lock()
	s.state.Habits = habits
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

func (s *HabitService) indexLocked(id string) int {
	for i := range s.state.Habits {
		if s.state.Habits[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *HabitService) persistLocked() error {
	s.state.Schema = schemaVersion
	return s.store.Save(keyHabits, s.state)
}
