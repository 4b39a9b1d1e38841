package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/derive"
	"github.com/unasp/eighthealth/pkg/wellness"
)

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage daily habits",
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name> <remedy>",
	Short: "Add a habit tied to one of the eight remedies",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addHabit(args[0], args[1], cmd)
	},
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with their current streaks",
	Run: func(cmd *cobra.Command, args []string) {
		listHabits(cmd)
	},
}

var habitToggleCmd = &cobra.Command{
	Use:   "toggle <id> [date]",
	Short: "Toggle a habit's completion for a date (default today)",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		date := ""
		if len(args) > 1 {
			date = args[1]
		}
		toggleHabit(args[0], date, cmd)
	},
}

var habitRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a habit",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		removeHabit(args[0], cmd)
	},
}

func init() {
	habitCmd.AddCommand(habitAddCmd, habitListCmd, habitToggleCmd, habitRemoveCmd)
	rootCmd.AddCommand(habitCmd)
}

func addHabit(name, remedy string, cmd *cobra.Command) {
	h, err := trk.Habits.Add(name, wellness.Remedy(remedy))
	if err != nil {
		cmd.Println("Error adding habit:", err)
		return
	}
	cmd.Printf("Added %q (%s) with id %s\n", h.Name, h.Remedy, h.ID)
}

func listHabits(cmd *cobra.Command) {
	habits := trk.Habits.Habits()
	if len(habits) == 0 {
		cmd.Println("No habits yet")
		return
	}
	now := time.Now()
	today := wellness.DateKey(now)
	for _, h := range habits {
		mark := " "
		if h.CompletedOn(today) {
			mark = "x"
		}
		cmd.Printf("[%s] %-30s %-10s streak %d  (%s)\n",
			mark, h.Name, h.Remedy, derive.Streak(h.CompletedDates, now), h.ID)
	}
}

func toggleHabit(id, date string, cmd *cobra.Command) {
	if date == "" {
		date = wellness.DateKey(time.Now())
	} else if _, err := time.Parse(wellness.DateLayout, date); err != nil {
		cmd.Printf("Ignoring %q: date must be YYYY-MM-DD\n", date)
		return
	}
	if err := trk.Habits.Toggle(id, date); err != nil {
		cmd.Println("Error toggling habit:", err)
		return
	}
	h, err := trk.Habits.Get(id)
	if err != nil {
		cmd.Println("Error reading habit:", err)
		return
	}
	if h.CompletedOn(date) {
		cmd.Printf("Completed %q on %s\n", h.Name, date)
	} else {
		cmd.Printf("Cleared %q on %s\n", h.Name, date)
	}
}

func removeHabit(id string, cmd *cobra.Command) {
	if err := trk.Habits.Remove(id); err != nil {
		cmd.Println("Error removing habit:", err)
		return
	}
	cmd.Println("Removed", id)
}
