package cmd

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/onboarding"
	"github.com/unasp/eighthealth/pkg/wellness"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Run the interactive profile setup",
	Long: `The "onboard" command walks through the four setup steps: name, age,
remedy selection and daily routine. Type "back" to return to the previous
step, or "skip" from the remedy step onward to finish with the defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOnboarding(cmd)
	},
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboarding(cmd *cobra.Command) error {
	w, err := onboarding.New(trk.User)
	if err != nil {
		cmd.Println("Profile already set up. Run `eighthealth reset` to start over.")
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for !w.Done() {
		prompt(cmd, w)
		if !scanner.Scan() {
			cmd.Println("\nSetup abandoned, nothing saved.")
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "back":
			w.Back()
			continue
		case "skip":
			if err := w.Skip(); err != nil {
				cmd.Println(err.Error())
			}
			continue
		}

		applyInput(cmd, w, line)
		if err := w.Next(); err != nil {
			cmd.Println(err.Error())
		}
	}

	p := trk.User.Profile()
	cmd.Printf("Welcome, %s! Daily water goal: %d ml.\n", p.Name, p.WaterGoalML)
	return nil
}

func prompt(cmd *cobra.Command, w *onboarding.Wizard) {
	labels := onboarding.StepLabels()
	cmd.Printf("[%d/%d] %s\n", int(w.Step()), len(labels), labels[int(w.Step())-1])
	switch w.Step() {
	case onboarding.StepName:
		cmd.Print("Your name: ")
	case onboarding.StepAge:
		cmd.Print("Your age: ")
	case onboarding.StepRemedies:
		cmd.Println("Remedies to focus on (comma-separated):")
		for _, r := range wellness.Remedies() {
			cmd.Printf("  - %s\n", r)
		}
		cmd.Print("> ")
	case onboarding.StepRoutine:
		d := w.Draft()
		cmd.Printf("Routine as height,weight,goal,wake,sleep [%v,%v,%d,%s,%s]: ",
			d.HeightCm, d.WeightKg, d.WaterGoalML, d.WakeTime, d.SleepTime)
	}
}

// applyInput feeds one line into the wizard's current step. Blank input on
// the routine step keeps the draft defaults.
func applyInput(cmd *cobra.Command, w *onboarding.Wizard, line string) {
	switch w.Step() {
	case onboarding.StepName:
		w.SetName(line)
	case onboarding.StepAge:
		w.SetAge(line)
	case onboarding.StepRemedies:
		if line == "" {
			return
		}
		var records []wellness.RemedyRecord
		for _, part := range strings.Split(line, ",") {
			r := wellness.Remedy(strings.TrimSpace(part))
			if !r.Valid() {
				cmd.Printf("Skipping unknown remedy %q\n", part)
				continue
			}
			records = append(records, wellness.RemedyRecord{
				Kind: wellness.RemedyRecordSimple,
				ID:   r,
			})
		}
		w.SetRemedies(records)
	case onboarding.StepRoutine:
		if line == "" {
			return
		}
		parts := strings.Split(line, ",")
		if len(parts) != 5 {
			cmd.Println("Expected height,weight,goal,wake,sleep")
			return
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err == nil {
			w.SetHeight(v)
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
			w.SetWeight(v)
		}
		if v, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil {
			w.SetWaterGoal(v)
		}
		w.SetWakeTime(strings.TrimSpace(parts[3]))
		w.SetSleepTime(strings.TrimSpace(parts[4]))
	}
}
