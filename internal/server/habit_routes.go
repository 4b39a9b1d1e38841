package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/unasp/eighthealth/internal/derive"
	"github.com/unasp/eighthealth/internal/tracker"
	"github.com/unasp/eighthealth/pkg/wellness"
)

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	resp := HabitListResponse{Habits: s.trk.Habits.Habits()}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) addHabit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string          `json:"name"`
		Remedy wellness.Remedy `json:"remedy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	h, err := s.trk.Habits.Add(req.Name, req.Remedy)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := writeJSON(w, http.StatusCreated, h); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) removeHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "habit_id")
	if err := s.trk.Habits.Remove(id); err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// toggleHabit flips the completion flag for a date, defaulting to today.
// Toggling the same date twice is a no-op pair.
func (s *Server) toggleHabit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "habit_id")

	var req struct {
		Date string `json:"date"`
	}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
			return
		}
	}
	if req.Date == "" {
		req.Date = wellness.DateKey(s.now())
	}

	if err := s.trk.Habits.Toggle(id, req.Date); err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}

	h, err := s.trk.Habits.Get(id)
	if err != nil {
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, h); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getHabitSummary(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "habit_id")

	h, err := s.trk.Habits.Get(id)
	if err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}

	now := s.now()
	levels := map[string]int{}
	for _, d := range h.CompletedDates {
		levels[d] = 4
	}

	summary := HabitSummaryResponse{
		HabitID:        h.ID,
		Name:           h.Name,
		Remedy:         h.Remedy,
		CurrentStreak:  derive.Streak(h.CompletedDates, now),
		TotalDaysDone:  len(h.CompletedDates),
		CompletedToday: h.CompletedOn(wellness.DateKey(now)),
		Last30Days:     derive.Last30DayStats(levels, now),
	}
	if err := writeJSON(w, http.StatusOK, summary); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}
