package tracker

import (
	"errors"
	"sync"
	"time"

	"github.com/unasp/eighthealth/internal/logger"
	"github.com/unasp/eighthealth/internal/storage"
	"github.com/unasp/eighthealth/pkg/wellness"
)

var ErrNegativeAmount = errors.New("amount must not be negative")

type waterBlob struct {
	Schema int `json:"schema,omitempty"`
	wellness.WaterData
}

// WaterService owns the daily water counter and its 30-day history.
type WaterService struct {
	store storage.Store
	now   func() time.Time
	obs   observers

	mu    sync.RWMutex
	state waterBlob
}

func NewWaterService(store storage.Store, now func() time.Time) (*WaterService, error) {
	s := &WaterService{store: store, now: now}
	found, err := store.Load(keyWater, &s.state)
	if err != nil {
		return nil, err
	}
	if !found {
		s.state = s.defaultState()
	}
	return s, nil
}

func (s *WaterService) defaultState() waterBlob {
	return waterBlob{
		Schema: schemaVersion,
		WaterData: wellness.WaterData{
			DailyGoalML: wellness.DefaultWaterGoalML,
			LastUpdated: wellness.DateKey(s.now()),
		},
	}
}

func (s *WaterService) Subscribe(fn func()) func() {
	return s.obs.subscribe(fn)
}

// AddWater adds ml to today's running total. When the stored date no longer
// matches today, the previous day's nonzero total is archived into history
// first and the counter restarts at ml.
func (s *WaterService) AddWater(ml int) error {
	if ml < 0 {
		return ErrNegativeAmount
	}

	s.mu.Lock()
	today := wellness.DateKey(s.now())
	if s.state.LastUpdated != today {
		if s.state.CurrentAmountML > 0 {
			s.archiveLocked(s.state.LastUpdated, s.state.CurrentAmountML)
		}
		s.state.CurrentAmountML = ml
		s.state.LastUpdated = today
	} else {
		s.state.CurrentAmountML += ml
		for i := range s.state.History {
			if s.state.History[i].Date == today {
				s.state.History[i].AmountML = s.state.CurrentAmountML
			}
		}
	}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// SetGoal replaces the daily goal. Unparsable input never reaches here; the
// call sites drop it and keep the previous value.
func (s *WaterService) SetGoal(ml int) error {
	if ml < 0 {
		return ErrNegativeAmount
	}
	s.mu.Lock()
	s.state.DailyGoalML = ml
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// ResetDaily archives today's nonzero total and zeroes the counter.
func (s *WaterService) ResetDaily() error {
	s.mu.Lock()
	today := wellness.DateKey(s.now())
	if s.state.CurrentAmountML > 0 {
		s.archiveLocked(s.state.LastUpdated, s.state.CurrentAmountML)
		s.state.CurrentAmountML = 0
	}
	s.state.LastUpdated = today
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// SeedHistory replaces the archived history wholesale. Only the demo loader
// uses this.
func (s *WaterService) SeedHistory(entries []wellness.WaterHistoryEntry) error {
	s.mu.Lock()
	s.state.History = append([]wellness.WaterHistoryEntry(nil), entries...)
	if n := len(s.state.History); n > wellness.WaterHistoryCap {
		s.state.History = s.state.History[n-wellness.WaterHistoryCap:]
	}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// Data returns a snapshot of the water state.
func (s *WaterService) Data() wellness.WaterData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := s.state.WaterData
	d.History = append([]wellness.WaterHistoryEntry(nil), d.History...)
	return d
}

func (s *WaterService) Reset() error {
	s.mu.Lock()
	s.state = s.defaultState()
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	logger.Debug("Water store reset")
	s.obs.notify()
	return nil
}

// archiveLocked appends one day to history, evicting the oldest entries past
// the 30-entry cap.
func (s *WaterService) archiveLocked(date string, amount int) {
	s.state.History = append(s.state.History, wellness.WaterHistoryEntry{Date: date, AmountML: amount})
	if n := len(s.state.History); n > wellness.WaterHistoryCap {
		s.state.History = s.state.History[n-wellness.WaterHistoryCap:]
	}
}

func (s *WaterService) persistLocked() error {
	s.state.Schema = schemaVersion
	return s.store.Save(keyWater, s.state)
}
