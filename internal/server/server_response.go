package server

import (
	"github.com/unasp/eighthealth/internal/derive"
	"github.com/unasp/eighthealth/pkg/wellness"
)

type OnboardingResponse struct {
	Complete bool `json:"complete"`
	HasName  bool `json:"has_name"`
}

type WaterResponse struct {
	wellness.WaterData
	Progress int `json:"progress"`
}

type HabitListResponse struct {
	Habits []wellness.Habit `json:"habits"`
}

type HabitSummaryResponse struct {
	HabitID        string               `json:"habit_id"`
	Name           string               `json:"name"`
	Remedy         wellness.Remedy      `json:"remedy"`
	CurrentStreak  int                  `json:"current_streak"`
	TotalDaysDone  int                  `json:"total_days_done"`
	CompletedToday bool                 `json:"completed_today"`
	Last30Days     derive.ActivityStats `json:"last_30_days"`
}

type RoutineListResponse struct {
	Routines []wellness.RoutineActivity `json:"routines"`
}
