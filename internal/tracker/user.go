package tracker

import (
	"sync"
	"time"

	"github.com/unasp/eighthealth/internal/logger"
	"github.com/unasp/eighthealth/internal/storage"
	"github.com/unasp/eighthealth/pkg/wellness"
)

type userBlob struct {
	Schema             int                   `json:"schema,omitempty"`
	UserData           *wellness.UserProfile `json:"userData"`
	OnboardingComplete bool                  `json:"isOnboardingComplete"`
}

// UserService owns the user profile. The profile is nil until onboarding
// creates it and nulled again on reset.
type UserService struct {
	store storage.Store
	now   func() time.Time
	obs   observers

	mu    sync.RWMutex
	state userBlob
}

func NewUserService(store storage.Store, now func() time.Time) (*UserService, error) {
	s := &UserService{store: store, now: now}
	found, err := store.Load(keyUser, &s.state)
	if err != nil {
		return nil, err
	}
	if !found {
		s.state = userBlob{Schema: schemaVersion}
	}
	return s, nil
}

func (s *UserService) Subscribe(fn func()) func() {
	return s.obs.subscribe(fn)
}

// ProfileUpdate carries the fields to merge onto the current profile. Nil
// pointers and nil slices leave the existing value untouched.
type ProfileUpdate struct {
	Name                *string
	Age                 *string
	HeightCm            *float64
	WeightKg            *float64
	SelectedRemedies    []wellness.Remedy
	Remedies            []wellness.RemedyRecord
	WaterGoalML         *int
	WakeTime            *string
	SleepTime           *string
	OnboardingCompleted *bool
}

// SetUserData shallow-merges the update onto the existing profile, creating
// an empty profile first if none exists.
func (s *UserService) SetUserData(u ProfileUpdate) error {
	s.mu.Lock()
	if s.state.UserData == nil {
		s.state.UserData = &wellness.UserProfile{}
	}
	p := s.state.UserData
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.HeightCm != nil {
		p.HeightCm = *u.HeightCm
	}
	if u.WeightKg != nil {
		p.WeightKg = *u.WeightKg
	}
	if u.SelectedRemedies != nil {
		p.SelectedRemedies = u.SelectedRemedies
	}
	if u.Remedies != nil {
		p.Remedies = u.Remedies
	}
	if u.WaterGoalML != nil {
		p.WaterGoalML = *u.WaterGoalML
	}
	if u.WakeTime != nil {
		p.WakeTime = *u.WakeTime
	}
	if u.SleepTime != nil {
		p.SleepTime = *u.SleepTime
	}
	if u.OnboardingCompleted != nil {
		p.OnboardingCompleted = *u.OnboardingCompleted
	}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// SetRemedies replaces the selected remedy set. A nil profile stays nil.
func (s *UserService) SetRemedies(remedies []wellness.Remedy) error {
	s.mu.Lock()
	if s.state.UserData != nil {
		s.state.UserData.SelectedRemedies = remedies
	}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// CompleteOnboarding sets only the completed flag.
func (s *UserService) CompleteOnboarding() error {
	s.mu.Lock()
	s.state.OnboardingComplete = true
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.obs.notify()
	return nil
}

// Profile returns a snapshot of the current profile, or nil before
// onboarding.
func (s *UserService) Profile() *wellness.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.UserData == nil {
		return nil
	}
	p := *s.state.UserData
	p.SelectedRemedies = append([]wellness.Remedy(nil), p.SelectedRemedies...)
	p.Remedies = append([]wellness.RemedyRecord(nil), p.Remedies...)
	return &p
}

// OnboardingComplete is the routing gate: true only once the wizard's
// terminal step (or skip) has committed.
func (s *UserService) OnboardingComplete() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.OnboardingComplete
}

func (s *UserService) Reset() error {
	s.mu.Lock()
	s.state = userBlob{Schema: schemaVersion}
	err := s.persistLocked()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	logger.Debug("User store reset")
	s.obs.notify()
	return nil
}

func (s *UserService) persistLocked() error {
	s.state.Schema = schemaVersion
	return s.store.Save(keyUser, s.state)
}
