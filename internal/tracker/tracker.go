package tracker

import (
	"errors"
	"sync"
	"time"

	"github.com/unasp/eighthealth/internal/storage"
)

// Persisted blob keys, one per store.
const (
	keyUser     = "eighthealth/user"
	keyWater    = "eighthealth/water"
	keyHabits   = "eighthealth/habits"
	keyRoutines = "eighthealth/routines"
)

// schemaVersion is written into every blob. It is never required on read;
// legacy blobs without it decode fine.
const schemaVersion = 1

var ErrNotFound = errors.New("not found")

// Tracker bundles the four stores behind one handle that is built once at
// startup and passed to consumers.
type Tracker struct {
	User     *UserService
	Water    *WaterService
	Habits   *HabitService
	Routines *RoutineService
}

func New(store storage.Store) (*Tracker, error) {
	return NewWithClock(store, time.Now)
}

// NewWithClock builds a Tracker with an injected clock. Tests use a fixed
// clock to simulate day rollover.
func NewWithClock(store storage.Store, now func() time.Time) (*Tracker, error) {
	user, err := NewUserService(store, now)
	if err != nil {
		return nil, err
	}
	water, err := NewWaterService(store, now)
	if err != nil {
		return nil, err
	}
	habits, err := NewHabitService(store, now)
	if err != nil {
		return nil, err
	}
	routines, err := NewRoutineService(store, now)
	if err != nil {
		return nil, err
	}
	return &Tracker{User: user, Water: water, Habits: habits, Routines: routines}, nil
}

// ResetAll restores every store to factory defaults. All four complete
// before any caller re-seeds.
func (t *Tracker) ResetAll() error {
	if err := t.User.Reset(); err != nil {
		return err
	}
	if err := t.Routines.Reset(); err != nil {
		return err
	}
	if err := t.Habits.Reset(); err != nil {
		return err
	}
	return t.Water.Reset()
}

// observers implements the subscribe/notify mechanism every store exposes.
// Notification runs synchronously after each completed mutation.
type observers struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func (o *observers) subscribe(fn func()) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.subs == nil {
		o.subs = make(map[int]func())
	}
	id := o.next
	o.next++
	o.subs[id] = fn
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		delete(o.subs, id)
	}
}

func (o *observers) notify() {
	o.mu.Lock()
	fns := make([]func(), 0, len(o.subs))
	for _, fn := range o.subs {
		fns = append(fns, fn)
	}
	o.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
