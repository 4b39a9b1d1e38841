// Package onboarding implements the profile setup wizard: a small step
// machine that accumulates a draft profile and commits it to the user store
// in one transaction when finished or skipped.
package onboarding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/unasp/eighthealth/internal/derive"
	"github.com/unasp/eighthealth/internal/tracker"
	"github.com/unasp/eighthealth/pkg/wellness"
)

type Step int

const (
	StepName Step = iota + 1
	StepAge
	StepRemedies
	StepRoutine
)

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepAge:
		return "age"
	case StepRemedies:
		return "remedies"
	case StepRoutine:
		return "routine"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ErrAlreadyOnboarded guards against re-entering the wizard once a completed
// profile exists; the router sends those users straight to the dashboard.
var ErrAlreadyOnboarded = errors.New("onboarding already completed")

// ValidationError blocks step advancement and carries the message shown
// inline to the user. It is never fatal.
type ValidationError struct {
	Step    Step
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Draft is the in-progress profile. It lives only in the wizard and is
// discarded if the wizard is abandoned before commit.
type Draft struct {
	Name             string
	Age              string
	HeightCm         float64
	WeightKg         float64
	SelectedRemedies []wellness.Remedy
	Remedies         []wellness.RemedyRecord
	WaterGoalML      int
	WakeTime         string
	SleepTime        string
}

// Wizard walks Step1Name .. Step4Routine, then commits. One wizard per
// onboarding session.
type Wizard struct {
	users     *tracker.UserService
	step      Step
	draft     Draft
	committed bool
}

// New starts a wizard at the name step with a fresh default draft. It
// refuses to start when a completed profile already exists.
func New(users *tracker.UserService) (*Wizard, error) {
	if p := users.Profile(); p != nil && p.Name != "" && users.OnboardingComplete() {
		return nil, ErrAlreadyOnboarded
	}
	return &Wizard{
		users: users,
		step:  StepName,
		draft: Draft{
			HeightCm:    170,
			WeightKg:    70,
			WaterGoalML: wellness.DefaultWaterGoalML,
			WakeTime:    "07:00",
			SleepTime:   "22:00",
		},
	}, nil
}

func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) Draft() Draft { return w.draft }

func (w *Wizard) Done() bool { return w.committed }

// StepLabels returns the progress indicator labels in step order.
func StepLabels() []string {
	return []string{"Seu Nome", "Sua Idade", "Objetivo", "Rotina"}
}

func (w *Wizard) SetName(name string) { w.draft.Name = name }

func (w *Wizard) SetAge(age string) { w.draft.Age = age }

func (w *Wizard) SetHeight(cm float64) { w.draft.HeightCm = cm }

func (w *Wizard) SetWeight(kg float64) { w.draft.WeightKg = kg }

func (w *Wizard) SetWaterGoal(ml int) { w.draft.WaterGoalML = ml }

func (w *Wizard) SetWakeTime(t string) { w.draft.WakeTime = t }

func (w *Wizard) SetSleepTime(t string) { w.draft.SleepTime = t }

// SetRemedies stores the remedy records and keeps the selected-remedy id
// set derived from them.
func (w *Wizard) SetRemedies(records []wellness.RemedyRecord) {
	w.draft.Remedies = records
	selected := make([]wellness.Remedy, 0, len(records))
	for _, r := range records {
		selected = append(selected, r.ID)
	}
	w.draft.SelectedRemedies = selected
}

// Validate checks the current step's predicate without advancing.
func (w *Wizard) Validate() error {
	switch w.step {
	case StepName:
		if strings.TrimSpace(w.draft.Name) == "" {
			return &ValidationError{Step: w.step, Message: "Por favor, informe seu nome."}
		}
	case StepAge:
		age, err := strconv.Atoi(strings.TrimSpace(w.draft.Age))
		if err != nil || age < 1 || age > 120 {
			return &ValidationError{Step: w.step, Message: "Por favor, informe uma idade válida entre 1 e 120 anos."}
		}
	case StepRemedies:
		// Always valid; selecting nothing is allowed.
	case StepRoutine:
		if w.draft.HeightCm <= 0 || w.draft.WeightKg <= 0 {
			return &ValidationError{Step: w.step, Message: "Informe altura e peso para concluir."}
		}
	}
	return nil
}

// Next advances one step when the current step validates, committing on the
// terminal step. A validation failure leaves the wizard where it is.
func (w *Wizard) Next() error {
	if w.committed {
		return ErrAlreadyOnboarded
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if w.step < StepRoutine {
		w.step++
		return nil
	}

	// Terminal step: apply the weight-based water recommendation, but only
	// while the goal still sits at the untouched default.
	if w.draft.WaterGoalML == wellness.DefaultWaterGoalML && w.draft.WeightKg > 0 {
		w.draft.WaterGoalML = derive.RecommendedWaterGoalML(w.draft.WeightKg)
	}
	return w.commit()
}

// Back retreats one step unconditionally, stopping at the name step.
func (w *Wizard) Back() {
	if w.step > StepName {
		w.step--
	}
}

// Skip commits the draft as gathered so far, bypassing the remaining
// validation. It is offered from the remedies step onward.
func (w *Wizard) Skip() error {
	if w.committed {
		return ErrAlreadyOnboarded
	}
	if w.step < StepRemedies {
		return &ValidationError{Step: w.step, Message: "Pular está disponível a partir do passo de remédios."}
	}
	return w.commit()
}

func (w *Wizard) commit() error {
	d := w.draft
	completed := true
	err := w.users.SetUserData(tracker.ProfileUpdate{
		Name:                &d.Name,
		Age:                 &d.Age,
		HeightCm:            &d.HeightCm,
		WeightKg:            &d.WeightKg,
		SelectedRemedies:    d.SelectedRemedies,
		Remedies:            d.Remedies,
		WaterGoalML:         &d.WaterGoalML,
		WakeTime:            &d.WakeTime,
		SleepTime:           &d.SleepTime,
		OnboardingCompleted: &completed,
	})
	if err != nil {
		return err
	}
	if err := w.users.CompleteOnboarding(); err != nil {
		return err
	}
	w.committed = true
	return nil
}
