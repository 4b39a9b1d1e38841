package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/derive"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add <ml>",
	Short: "Log water in milliliters",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addWater(args[0], cmd)
	},
}

var waterGoalCmd = &cobra.Command{
	Use:   "goal <ml>",
	Short: "Set the daily water goal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setWaterGoal(args[0], cmd)
	},
}

var waterStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's progress and history",
	Run: func(cmd *cobra.Command, args []string) {
		waterStatus(cmd)
	},
}

var waterScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the suggested serving times for today",
	Run: func(cmd *cobra.Command, args []string) {
		waterSchedule(cmd)
	},
}

func init() {
	waterCmd.AddCommand(waterAddCmd, waterGoalCmd, waterStatusCmd, waterScheduleCmd)
	rootCmd.AddCommand(waterCmd)
}

func addWater(raw string, cmd *cobra.Command) {
	ml, err := strconv.Atoi(raw)
	if err != nil {
		cmd.Printf("Ignoring %q: amount must be a whole number of ml\n", raw)
		return
	}
	if err := trk.Water.AddWater(ml); err != nil {
		cmd.Println("Error logging water:", err)
		return
	}
	data := trk.Water.Data()
	cmd.Printf("%d ml today (%d%% of %d ml)\n",
		data.CurrentAmountML,
		derive.WaterProgress(data.CurrentAmountML, data.DailyGoalML),
		data.DailyGoalML)
}

func setWaterGoal(raw string, cmd *cobra.Command) {
	ml, err := strconv.Atoi(raw)
	if err != nil {
		cmd.Printf("Ignoring %q: goal must be a whole number of ml\n", raw)
		return
	}
	if err := trk.Water.SetGoal(ml); err != nil {
		cmd.Println("Error setting goal:", err)
		return
	}
	cmd.Printf("Daily goal set to %d ml\n", ml)
}

func waterStatus(cmd *cobra.Command) {
	data := trk.Water.Data()
	cmd.Printf("Today: %d / %d ml (%d%%)\n",
		data.CurrentAmountML, data.DailyGoalML,
		derive.WaterProgress(data.CurrentAmountML, data.DailyGoalML))
	for _, e := range data.History {
		cmd.Printf("  %s  %d ml\n", e.Date, e.AmountML)
	}
}

func waterSchedule(cmd *cobra.Command) {
	wake, sleep := "07:00", "22:00"
	if p := trk.User.Profile(); p != nil {
		if p.WakeTime != "" {
			wake = p.WakeTime
		}
		if p.SleepTime != "" {
			sleep = p.SleepTime
		}
	}

	schedule, err := derive.BuildWaterSchedule(wake, sleep, trk.Water.Data().DailyGoalML)
	if err != nil {
		cmd.Println("Error building schedule:", err)
		return
	}
	cmd.Printf("%d servings of %d ml:\n", len(schedule.Servings), schedule.ServingML)
	for _, s := range schedule.Servings {
		cmd.Printf("  %s  %d ml\n", s.Time, s.AmountML)
	}
}
