package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unasp/eighthealth/internal/demo"
	"github.com/unasp/eighthealth/internal/tracker"
	"github.com/unasp/eighthealth/pkg/versioninfo"
	"github.com/unasp/eighthealth/pkg/wellness"
)

type Server struct {
	trk *tracker.Tracker
	now func() time.Time
}

func New(trk *tracker.Tracker) *Server {
	s := &Server{trk: trk, now: time.Now}

	// Keep the gauges in sync with the stores.
	trk.Habits.Subscribe(func() {
		updateActiveHabits(len(trk.Habits.Habits()))
	})
	trk.Water.Subscribe(func() {
		updateWaterToday(trk.Water.Data().CurrentAmountML)
	})
	updateActiveHabits(len(trk.Habits.Habits()))
	updateWaterToday(trk.Water.Data().CurrentAmountML)

	return s
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/onboarding", s.getOnboarding)

	r.Get("/profile", s.getProfile)
	r.Put("/profile", s.putProfile)

	r.Post("/demo", s.loadDemo)
	r.Post("/reset", s.resetAll)

	r.Route("/water", func(r chi.Router) {
		r.Get("/", s.getWater)
		r.Post("/", s.addWater)
		r.Put("/goal", s.setWaterGoal)
		r.Get("/schedule", s.getWaterSchedule)
	})

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", s.listHabits)
		r.Post("/", s.addHabit)
		r.Delete("/{habit_id}", s.removeHabit)
		r.Post("/{habit_id}/toggle", s.toggleHabit)
		r.Get("/{habit_id}/summary", s.getHabitSummary)
	})

	r.Route("/routines", func(r chi.Router) {
		r.Get("/", s.listRoutines)
		r.Post("/", s.addRoutine)
		r.Get("/today", s.getTodayRoutines)
		r.Get("/next", s.getNextActivity)
		r.Patch("/{routine_id}", s.updateRoutine)
		r.Delete("/{routine_id}", s.removeRoutine)
		r.Post("/{routine_id}/complete", s.completeRoutine)
	})

	return r
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		http.Error(w, `{"error":"failed to serialize version info"}`, http.StatusInternalServerError)
		return
	}
}

// getOnboarding is the routing gate: complete means the wizard finished,
// has_name distinguishes a partially filled profile.
func (s *Server) getOnboarding(w http.ResponseWriter, _ *http.Request) {
	p := s.trk.User.Profile()
	resp := OnboardingResponse{
		Complete: s.trk.User.OnboardingComplete(),
		HasName:  p != nil && p.Name != "",
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getProfile(w http.ResponseWriter, _ *http.Request) {
	p := s.trk.User.Profile()
	if p == nil {
		http.Error(w, `{"error":"no profile yet"}`, http.StatusNotFound)
		return
	}
	if err := writeJSON(w, http.StatusOK, p); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

type profileRequest struct {
	Name                *string                 `json:"name"`
	Age                 *string                 `json:"age"`
	HeightCm            *float64                `json:"height"`
	WeightKg            *float64                `json:"weight"`
	SelectedRemedies    []wellness.Remedy       `json:"selectedRemedies"`
	Remedies            []wellness.RemedyRecord `json:"remedies"`
	WaterGoalML         *int                    `json:"waterGoal"`
	WakeTime            *string                 `json:"wakeUpTime"`
	SleepTime           *string                 `json:"sleepTime"`
	OnboardingCompleted *bool                   `json:"onboardingCompleted"`
}

// putProfile shallow-merges the given fields; absent fields keep their
// stored value.
func (s *Server) putProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if req.WaterGoalML != nil && *req.WaterGoalML < 0 {
		http.Error(w, `{"error":"water goal must not be negative"}`, http.StatusBadRequest)
		return
	}
	for _, t := range []*string{req.WakeTime, req.SleepTime} {
		if t == nil {
			continue
		}
		if _, err := wellness.ParseClock(*t); err != nil {
			http.Error(w, `{"error":"times must be HH:MM"}`, http.StatusBadRequest)
			return
		}
	}

	err := s.trk.User.SetUserData(tracker.ProfileUpdate{
		Name:                req.Name,
		Age:                 req.Age,
		HeightCm:            req.HeightCm,
		WeightKg:            req.WeightKg,
		SelectedRemedies:    req.SelectedRemedies,
		Remedies:            req.Remedies,
		WaterGoalML:         req.WaterGoalML,
		WakeTime:            req.WakeTime,
		SleepTime:           req.SleepTime,
		OnboardingCompleted: req.OnboardingCompleted,
	})
	if err != nil {
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, s.trk.User.Profile()); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) loadDemo(w http.ResponseWriter, _ *http.Request) {
	res, err := demo.Load(s.trk)
	if err != nil {
		http.Error(w, `{"error":"demo load failed"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, res); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) resetAll(w http.ResponseWriter, _ *http.Request) {
	res, err := demo.Reset(s.trk)
	if err != nil {
		http.Error(w, `{"error":"reset failed"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, res); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}
