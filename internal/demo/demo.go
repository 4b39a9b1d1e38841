// Package demo loads a fully populated sample dataset so the app can be
// explored without days of real usage. Loading wipes whatever is there.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/unasp/eighthealth/internal/logger"
	"github.com/unasp/eighthealth/internal/tracker"
	"github.com/unasp/eighthealth/pkg/wellness"
)

// Result reports the outcome of a load in a user-facing form.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

var (
	weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	allWeek  []string // empty = every day
)

// Load resets every store and installs the demo user, routines, habits with
// a month of completion history, and a month of water history.
func Load(trk *tracker.Tracker) (Result, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := load(trk, rng, time.Now()); err != nil {
		return Result{Success: false, Message: "Não foi possível carregar os dados de demonstração."}, err
	}
	logger.Info("Demo data loaded")
	return Result{Success: true, Message: "Dados de demonstração carregados com sucesso!"}, nil
}

// Reset wipes all stores back to factory defaults.
func Reset(trk *tracker.Tracker) (Result, error) {
	if err := trk.ResetAll(); err != nil {
		return Result{Success: false, Message: "Não foi possível limpar os dados."}, err
	}
	logger.Info("All data reset")
	return Result{Success: true, Message: "Todos os dados foram apagados."}, nil
}

func load(trk *tracker.Tracker, rng *rand.Rand, now time.Time) error {
	if err := trk.ResetAll(); err != nil {
		return err
	}
	if err := seedProfile(trk.User); err != nil {
		return err
	}
	if err := seedRoutines(trk.Routines); err != nil {
		return err
	}
	if err := seedHabits(trk.Habits, rng, now); err != nil {
		return err
	}
	return seedWater(trk.Water, rng, now)
}

func seedProfile(users *tracker.UserService) error {
	name := "Unasp"
	age := "35"
	height := 175.0
	weight := 70.0
	goal := 2000
	wake := "06:30"
	sleep := "22:30"
	completed := true
	selected := []wellness.Remedy{
		wellness.RemedyWater, wellness.RemedyExercise, wellness.RemedyRest,
		wellness.RemedyNutrition, wellness.RemedySunlight,
	}
	records := []wellness.RemedyRecord{
		{Kind: wellness.RemedyRecordSimple, ID: wellness.RemedyWater, Name: "Água"},
		{Kind: wellness.RemedyRecordSimple, ID: wellness.RemedyExercise, Name: "Exercício"},
		{Kind: wellness.RemedyRecordSimple, ID: wellness.RemedyRest, Name: "Descanso"},
		{Kind: wellness.RemedyRecordSimple, ID: wellness.RemedyNutrition, Name: "Alimentação"},
		{Kind: wellness.RemedyRecordSimple, ID: wellness.RemedySunlight, Name: "Luz solar"},
	}
	err := users.SetUserData(tracker.ProfileUpdate{
		Name:                &name,
		Age:                 &age,
		HeightCm:            &height,
		WeightKg:            &weight,
		SelectedRemedies:    selected,
		Remedies:            records,
		WaterGoalML:         &goal,
		WakeTime:            &wake,
		SleepTime:           &sleep,
		OnboardingCompleted: &completed,
	})
	if err != nil {
		return err
	}
	return users.CompleteOnboarding()
}

func seedRoutines(routines *tracker.RoutineService) error {
	activities := []wellness.RoutineActivity{
		{Name: "Beber água ao acordar", StartTime: "06:35", EndTime: "06:40", Category: "water", Days: allWeek},
		{Name: "Caminhada matinal", StartTime: "07:00", EndTime: "07:30", Category: "exercise", Days: []string{"monday", "wednesday", "friday"}},
		{Name: "Café da manhã", StartTime: "07:45", EndTime: "08:15", Category: "nutrition", Days: allWeek},
		{Name: "Meditação", StartTime: "12:30", EndTime: "12:45", Category: "rest", Days: weekdays},
		{Name: "Banho de sol", StartTime: "15:00", EndTime: "15:20", Category: "sunlight", Days: []string{"monday", "wednesday", "friday", "sunday"}},
		{Name: "Academia", StartTime: "18:00", EndTime: "18:30", Category: "exercise", Days: []string{"tuesday", "thursday"}},
		{Name: "Jantar", StartTime: "19:00", EndTime: "19:30", Category: "nutrition", Days: allWeek},
		{Name: "Beber chá de camomila", StartTime: "21:30", EndTime: "21:45", Category: "rest", Days: allWeek},
	}
	for _, a := range activities {
		if _, err := routines.Add(a); err != nil {
			return fmt.Errorf("seed routine %q: %w", a.Name, err)
		}
	}
	return nil
}

// seedHabits installs five habits with roughly 70% completion density over
// the last 30 days.
func seedHabits(habits *tracker.HabitService, rng *rand.Rand, now time.Time) error {
	defs := []struct {
		name   string
		remedy wellness.Remedy
	}{
		{"Beber 2L de água", wellness.RemedyWater},
		{"30 min de exercício", wellness.RemedyExercise},
		{"8h de sono", wellness.RemedyRest},
		{"Comer vegetais", wellness.RemedyNutrition},
		{"15 min de sol", wellness.RemedySunlight},
	}

	createdAt := wellness.DateKey(now.AddDate(0, 0, -30))
	seeded := make([]wellness.Habit, 0, len(defs))
	for _, d := range defs {
		var dates []string
		for offset := 30; offset >= 0; offset-- {
			if rng.Float64() < 0.7 {
				dates = append(dates, wellness.DateKey(now.AddDate(0, 0, -offset)))
			}
		}
		seeded = append(seeded, wellness.Habit{
			ID:             uuid.NewString(),
			Name:           d.name,
			Remedy:         d.remedy,
			CreatedAt:      createdAt,
			CompletedDates: dates,
		})
	}
	return habits.Seed(seeded)
}

// seedWater installs 30 days of history plus a partial total for today.
func seedWater(water *tracker.WaterService, rng *rand.Rand, now time.Time) error {
	entries := make([]wellness.WaterHistoryEntry, 0, 30)
	for offset := 30; offset >= 1; offset-- {
		entries = append(entries, wellness.WaterHistoryEntry{
			Date:     wellness.DateKey(now.AddDate(0, 0, -offset)),
			AmountML: 1000 + rng.Intn(1501),
		})
	}
	if err := water.SeedHistory(entries); err != nil {
		return err
	}
	if err := water.SetGoal(wellness.DefaultWaterGoalML); err != nil {
		return err
	}
	if today := rng.Intn(1500); today > 0 {
		return water.AddWater(today)
	}
	return nil
}
