package tracker

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/unasp/eighthealth/internal/logger"
	"github.com/unasp/eighthealth/internal/storage"
	"github.com/unasp/eighthealth/pkg/wellness"
)

type routineBlob struct {
	Schema   int                        `json:"schema,omitempty"`
	Routines []wellness.RoutineActivity `json:"routines"`
}

// RoutineService owns the scheduled activities.
type RoutineService struct {
	store storage.Store
	now   func() time.Time
	obs   observers

	mu    sync.RWMutex
	state routineBlob
}

func NewRoutineService(store storage.Store, now func() time.Time) (*RoutineService, error) {
	s := &RoutineService{store: store, now: now}
	found, err := store.Load(keyRoutines, &s.state)
	if err != nil {
		return nil, err
	}
	if !found {
		s.state = routineBlob{Schema: schemaVersion}
	}
	return s, nil
}

func (s *RoutineService) Subscribe(fn func()) func() {
	return s.obs.subscribe(fn)
}

// Add stores the activity under a fresh id with Completed forced to false.
func (s *RoutineService) Add(a wellness.RoutineActivity) (wellness.RoutineActivity, error) {
	if err := validateActivity(a); err != nil {
		return wellness.RoutineActivity{}, err
	}
	a.ID = uuid.NewString()
	a.Completed = false

	s.mu.Lock()
	s.state.Routines = append(s.state.Routines, a)
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return wellness.RoutineActivity{}, err
	}
	logger.Info("Routine added", "routine_id", a.ID, "name", a.Name, "start", a.StartTime)
	s.obs.notify()
	return a, nil
}

// RoutineUpdate carries fields to merge onto an activity. Nil pointers and a
// nil Days slice leave the existing value untouched.
type RoutineUpdate struct {
	Name      *string
	StartTime *string
	EndTime   *string
	Category  *wellness.Category
	Days      []string
	Completed *bool
}

// Update shallow-merges the given fields onto the activity.
func (s *RoutineService) Update(id string, u RoutineUpdate) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	a := &s.state.Routines[idx]
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.StartTime != nil {
		a.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		a.EndTime = *u.EndTime
	}
	if u.Category != nil {
		a.Category = *u.Category
	}
	if u.Days != nil {
		a.Days = u.Days
	}
	if u.Completed != nil {
		a.Completed = *u.Completed
	}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

func (s *RoutineService) Remove(id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.state.Routines = append(s.state.Routines[:idx], s.state.Routines[idx+1:]...)
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// MarkCompleted sets the activity's daily completed flag. The flag is not
// date-scoped and does not reset at midnight.
func (s *RoutineService) MarkCompleted(id string, completed bool) error {
	return s.Update(id, RoutineUpdate{Completed: &completed})
}

// Routines returns a snapshot of all activities.
func (s *RoutineService) Routines() []wellness.RoutineActivity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked(s.state.Routines)
}

// DailyRoutines returns the activities scheduled for today's weekday, sorted
// ascending by start time. The sort is a plain lexical comparison of the
// "HH:MM" strings and is stable for ties.
func (s *RoutineService) DailyRoutines() []wellness.RoutineActivity {
	weekday := wellness.WeekdayName(s.now())

	s.mu.RLock()
	var today []wellness.RoutineActivity
	for _, a := range s.state.Routines {
		if a.OccursOn(weekday) {
			today = append(today, a)
		}
	}
	today = s.snapshotLocked(today)
	s.mu.RUnlock()

	sort.SliceStable(today, func(i, j int) bool {
		return today[i].StartTime < today[j].StartTime
	})
	return today
}

func (s *RoutineService) Get(id string) (wellness.RoutineActivity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return wellness.RoutineActivity{}, ErrNotFound
	}
	a := s.state.Routines[idx]
	a.Days = append([]string(nil), a.Days...)
	return a, nil
}

func (s *RoutineService) Reset() error {
	s.mu.Lock()
	s.state = routineBlob{Schema: schemaVersion}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	logger.Debug("Routine store reset")
	s.obs.notify()
	return nil
}

func (s *RoutineService) snapshotLocked(src []wellness.RoutineActivity) []wellness.RoutineActivity {
	out := make([]wellness.RoutineActivity, len(src))
	for i, a := range src {
		a.Days = append([]string(nil), a.Days...)
		out[i] = a
	}
	return out
}

func (s *RoutineService) indexLocked(id string) int {
	for i := range s.state.Routines {
		if s.state.Routines[i].ID == id {
			return i
		}
	}
	return -1
}

func validateActivity(a wellness.RoutineActivity) error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("activity name is required")
	}
	if _, err := wellness.ParseClock(a.StartTime); err != nil {
		return fmt.Errorf("bad start time: %w", err)
	}
	if _, err := wellness.ParseClock(a.EndTime); err != nil {
		return fmt.Errorf("bad end time: %w", err)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("unknown category %q", a.Category)
	}
	return nil
}

func (s *RoutineService) persistLocked() error {
	s.state.Schema = schemaVersion
	return s.store.Save(keyRoutines, s.state)
}
