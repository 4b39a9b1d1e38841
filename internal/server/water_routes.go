package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/unasp/eighthealth/internal/derive"
	"github.com/unasp/eighthealth/internal/tracker"
	"github.com/unasp/eighthealth/pkg/wellness"
)

func (s *Server) getWater(w http.ResponseWriter, _ *http.Request) {
	data := s.trk.Water.Data()
	resp := WaterResponse{
		WaterData: data,
		Progress:  derive.WaterProgress(data.CurrentAmountML, data.DailyGoalML),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) addWater(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if err := s.trk.Water.AddWater(req.Amount); err != nil {
		if errors.Is(err, tracker.ErrNegativeAmount) {
			http.Error(w, `{"error":"amount must not be negative"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	s.getWater(w, r)
}

func (s *Server) setWaterGoal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Goal int `json:"goal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if err := s.trk.Water.SetGoal(req.Goal); err != nil {
		if errors.Is(err, tracker.ErrNegativeAmount) {
			http.Error(w, `{"error":"goal must not be negative"}`, http.StatusBadRequest)
			return
		}
		http.Error(w, `{"error":"database write failed"}`, http.StatusInternalServerError)
		return
	}
	s.getWater(w, r)
}

// getWaterSchedule builds the day's serving plan from the profile's waking
// window. Without a profile it falls back to the default window.
func (s *Server) getWaterSchedule(w http.ResponseWriter, _ *http.Request) {
	wake, sleep := "07:00", "22:00"
	if p := s.trk.User.Profile(); p != nil {
		if p.WakeTime != "" {
			wake = p.WakeTime
		}
		if p.SleepTime != "" {
			sleep = p.SleepTime
		}
	}
	goal := s.trk.Water.Data().DailyGoalML
	if goal <= 0 {
		goal = wellness.DefaultWaterGoalML
	}

	schedule, err := derive.BuildWaterSchedule(wake, sleep, goal)
	if err != nil {
		http.Error(w, `{"error":"invalid waking window"}`, http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, schedule); err != nil {
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}
