package wellness

// Remedy is one of the eight natural remedies used to classify habits and
// routine activities.
type Remedy string

const (
	RemedyWater      Remedy = "water"
	RemedyExercise   Remedy = "exercise"
	RemedyRest       Remedy = "rest"
	RemedySunlight   Remedy = "sunlight"
	RemedyTemperance Remedy = "temperance"
	RemedyAir        Remedy = "air"
	RemedyNutrition  Remedy = "nutrition"
	RemedyTrust      Remedy = "trust"
)

// Remedies lists all eight remedies in their canonical order.
func Remedies() []Remedy {
	return []Remedy{
		RemedyWater, RemedyExercise, RemedyRest, RemedySunlight,
		RemedyTemperance, RemedyAir, RemedyNutrition, RemedyTrust,
	}
}

func (r Remedy) Valid() bool {
	switch r {
	case RemedyWater, RemedyExercise, RemedyRest, RemedySunlight,
		RemedyTemperance, RemedyAir, RemedyNutrition, RemedyTrust:
		return true
	}
	return false
}

// Category classifies a routine activity. It spans the remedies plus a few
// activity-only kinds.
type Category string

const (
	CategoryMedication Category = "medication"
	CategoryMeal       Category = "meal"
	CategoryOther      Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMedication, CategoryMeal, CategoryOther:
		return true
	}
	return Remedy(c).Valid()
}

// RemedyRecordKind tags the two shapes a remedy record can take.
type RemedyRecordKind string

const (
	RemedyRecordSimple   RemedyRecordKind = "simple"
	RemedyRecordDetailed RemedyRecordKind = "detailed"
)

// RemedyRecord is a free-form remedy entry gathered during onboarding. A
// simple record carries only the remedy id; a detailed one adds a display
// name and a preferred time of day.
type RemedyRecord struct {
	Kind RemedyRecordKind `json:"kind"`
	ID   Remedy           `json:"id"`
	Name string           `json:"name,omitempty"`
	Time string           `json:"time,omitempty"`
}

// UserProfile is the onboarded user's data. Age is kept as the raw numeric
// string the user typed.
type UserProfile struct {
	Name                string         `json:"name"`
	Age                 string         `json:"age"`
	HeightCm            float64        `json:"height"`
	WeightKg            float64        `json:"weight"`
	SelectedRemedies    []Remedy       `json:"selectedRemedies"`
	Remedies            []RemedyRecord `json:"remedies"`
	WaterGoalML         int            `json:"waterGoal"`
	WakeTime            string         `json:"wakeUpTime"`
	SleepTime           string         `json:"sleepTime"`
	OnboardingCompleted bool           `json:"onboardingCompleted"`
}

// WaterHistoryEntry is one archived day of water intake.
type WaterHistoryEntry struct {
	Date     string `json:"date"`
	AmountML int    `json:"amount"`
}

// DefaultWaterGoalML is the daily goal before the user sets one.
const DefaultWaterGoalML = 2000

// WaterHistoryCap bounds the archived history; oldest entries fall off first.
const WaterHistoryCap = 30

// WaterData is the water store's state. CurrentAmountML is the running total
// for LastUpdated's date and resets on day rollover.
type WaterData struct {
	CurrentAmountML int                 `json:"currentAmount"`
	DailyGoalML     int                 `json:"dailyGoal"`
	LastUpdated     string              `json:"lastUpdated"`
	History         []WaterHistoryEntry `json:"history"`
}

// Habit is a user-defined habit with its set of completed dates. Dates are
// YYYY-MM-DD strings, each present at most once.
type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Remedy         Remedy   `json:"remedy"`
	CreatedAt      string   `json:"createdAt"`
	CompletedDates []string `json:"completedDates"`
}

// CompletedOn reports whether date is in the habit's completed set.
func (h Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}

// RoutineActivity is a scheduled activity. Times are "HH:MM" strings compared
// lexically; EndTime may wrap past midnight for sleep activities and no
// start<=end ordering is enforced. An empty Days slice means every day.
// Completed is a daily flag that is not date-scoped.
type RoutineActivity struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Category  Category `json:"category"`
	Days      []string `json:"days,omitempty"`
	Completed bool     `json:"completed"`
}

// OccursOn reports whether the activity is scheduled for the given weekday
// name ("monday".."sunday").
func (a RoutineActivity) OccursOn(weekday string) bool {
	if len(a.Days) == 0 {
		return true
	}
	for _, d := range a.Days {
		if d == weekday {
			return true
		}
	}
	return false
}
