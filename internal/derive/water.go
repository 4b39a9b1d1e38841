// Package derive holds the pure derived-data computations. Everything here
// is side-effect free and recomputed on every read; at this scale there is
// nothing worth caching.
package derive

import (
	"math"

	"github.com/unasp/eighthealth/pkg/wellness"
)

// WaterProgress returns the percentage of the daily goal reached, rounded
// and clamped to 100. A non-positive goal reads as no progress.
func WaterProgress(currentML, goalML int) int {
	if goalML <= 0 {
		return 0
	}
	pct := int(math.Round(float64(currentML) / float64(goalML) * 100))
	return min(pct, 100)
}

// WaterServing is one scheduled glass of water.
type WaterServing struct {
	Time     string `json:"time"`
	AmountML int    `json:"amount"`
}

// WaterSchedule spreads the daily goal across the waking hours.
type WaterSchedule struct {
	AwakeMinutes int            `json:"awake_minutes"`
	ServingML    int            `json:"serving_ml"`
	Servings     []WaterServing `json:"servings"`
}

// BuildWaterSchedule derives serving times from the wake/sleep window and
// the daily goal: one serving roughly every two hours, never fewer than
// five, each rounded to the nearest 50 ml, evenly spaced from wake to sleep
// inclusive. A sleep time numerically before the wake time means sleep is
// past midnight.
func BuildWaterSchedule(wake, sleep string, goalML int) (WaterSchedule, error) {
	wakeMin, err := wellness.ParseClock(wake)
	if err != nil {
		return WaterSchedule{}, err
	}
	sleepMin, err := wellness.ParseClock(sleep)
	if err != nil {
		return WaterSchedule{}, err
	}

	awake := sleepMin - wakeMin
	if awake <= 0 {
		awake += 24 * 60
	}

	count := max(5, awake/120)
	serving := int(math.Round(float64(goalML)/float64(count)/50)) * 50

	servings := make([]WaterServing, count)
	step := float64(awake) / float64(count-1)
	for i := range servings {
		at := wakeMin + int(math.Round(float64(i)*step))
		servings[i] = WaterServing{
			Time:     wellness.FormatClock(at),
			AmountML: serving,
		}
	}

	return WaterSchedule{
		AwakeMinutes: awake,
		ServingML:    serving,
		Servings:     servings,
	}, nil
}
