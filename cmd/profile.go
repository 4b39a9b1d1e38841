package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/derive"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the user profile and body metrics",
	Run: func(cmd *cobra.Command, args []string) {
		showProfile(cmd)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func showProfile(cmd *cobra.Command) {
	p := trk.User.Profile()
	if p == nil {
		cmd.Println("No profile yet. Run `eighthealth onboard` first.")
		return
	}

	cmd.Printf("%s, %s years\n", p.Name, p.Age)
	cmd.Printf("Height: %.0f cm  Weight: %.1f kg\n", p.HeightCm, p.WeightKg)
	if bmi := derive.BMI(p.HeightCm, p.WeightKg); bmi > 0 {
		cmd.Printf("BMI: %.1f (%s)\n", bmi, derive.BMICategory(bmi))
	}
	cmd.Printf("Water goal: %d ml (recommended: %d ml)\n",
		p.WaterGoalML, derive.RecommendedWaterGoalML(p.WeightKg))
	cmd.Printf("Awake: %s - %s\n", p.WakeTime, p.SleepTime)
	if len(p.SelectedRemedies) > 0 {
		cmd.Print("Remedies:")
		for _, r := range p.SelectedRemedies {
			cmd.Printf(" %s", r)
		}
		cmd.Println()
	}
}
