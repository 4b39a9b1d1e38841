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

func (s *Server) listRoutines(w http.ResponseWriter, _ *http.Request) {
	resp := RoutineListResponse{Routines: s.trk.Routines.Routines()}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) addRoutine(w http.ResponseWriter, r *http.Request) {
	var a wellness.RoutineActivity
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	added, err := s.trk.Routines.Add(a)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := writeJSON(w, http.StatusCreated, added); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

type routineRequest struct {
	Name      *string            `json:"name"`
	StartTime *string            `json:"startTime"`
	EndTime   *string            `json:"endTime"`
	Category  *wellness.Category `json:"category"`
	Days      []string           `json:"days"`
	Completed *bool              `json:"completed"`
}

// updateRoutine shallow-merges the given fields onto the activity.
func (s *Server) updateRoutine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "routine_id")

	var req routineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	err := s.trk.Routines.Update(id, tracker.RoutineUpdate{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Category:  req.Category,
		Days:      req.Days,
		Completed: req.Completed,
	})
	if err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			http.Error(w, `{"error":"routine not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	updated, err := s.trk.Routines.Get(id)
	if err != nil {
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) removeRoutine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "routine_id")
	if err := s.trk.Routines.Remove(id); err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			http.Error(w, `{"error":"routine not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) completeRoutine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "routine_id")

	req := struct {
		Completed bool `json:"completed"`
	}{Completed: true}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
			return
		}
	}

	if err := s.trk.Routines.MarkCompleted(id, req.Completed); err != nil {
		if errors.Is(err, tracker.ErrNotFound) {
			http.Error(w, `{"error":"routine not found"}`, http.StatusNotFound)
			return
		}
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}

	updated, err := s.trk.Routines.Get(id)
	if err != nil {
		http.Error(w, `{"error":"storage error"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

// getTodayRoutines lists today's activities sorted by start time.
func (s *Server) getTodayRoutines(w http.ResponseWriter, _ *http.Request) {
	resp := RoutineListResponse{Routines: s.trk.Routines.DailyRoutines()}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getNextActivity(w http.ResponseWriter, _ *http.Request) {
	next, ok := derive.NextActivity(s.trk.Routines.DailyRoutines(), s.now())
	if !ok {
		http.Error(w, `{"error":"no upcoming activity"}`, http.StatusNotFound)
		return
	}
	if err := writeJSON(w, http.StatusOK, next); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}
