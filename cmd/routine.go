package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/derive"
	"github.com/unasp/eighthealth/pkg/wellness"
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage the daily routine of scheduled activities",
}

var (
	routineStart    string
	routineEnd      string
	routineCategory string
	routineDays     []string
)

var routineAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a scheduled activity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addRoutine(args[0], cmd)
	},
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every scheduled activity",
	Run: func(cmd *cobra.Command, args []string) {
		printRoutines(cmd, trk.Routines.Routines())
	},
}

var routineTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List today's activities in start-time order",
	Run: func(cmd *cobra.Command, args []string) {
		printRoutines(cmd, trk.Routines.DailyRoutines())
	},
}

var routineNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the next upcoming activity",
	Run: func(cmd *cobra.Command, args []string) {
		nextRoutine(cmd)
	},
}

var routineDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark an activity completed for today",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := trk.Routines.MarkCompleted(args[0], true); err != nil {
			cmd.Println("Error marking routine:", err)
			return
		}
		cmd.Println("Done", args[0])
	},
}

var routineRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an activity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := trk.Routines.Remove(args[0]); err != nil {
			cmd.Println("Error removing routine:", err)
			return
		}
		cmd.Println("Removed", args[0])
	},
}

func init() {
	routineAddCmd.Flags().StringVar(&routineStart, "start", "", "start time HH:MM")
	routineAddCmd.Flags().StringVar(&routineEnd, "end", "", "end time HH:MM")
	routineAddCmd.Flags().StringVar(&routineCategory, "category", "other", "remedy or medication/meal/other")
	routineAddCmd.Flags().StringSliceVar(&routineDays, "days", nil, "weekday names, empty = every day")

	routineCmd.AddCommand(routineAddCmd, routineListCmd, routineTodayCmd,
		routineNextCmd, routineDoneCmd, routineRemoveCmd)
	rootCmd.AddCommand(routineCmd)
}

func addRoutine(name string, cmd *cobra.Command) {
	a, err := trk.Routines.Add(wellness.RoutineActivity{
		Name:      name,
		StartTime: routineStart,
		EndTime:   routineEnd,
		Category:  wellness.Category(routineCategory),
		Days:      routineDays,
	})
	if err != nil {
		cmd.Println("Error adding routine:", err)
		return
	}
	cmd.Printf("Added %q %s-%s with id %s\n", a.Name, a.StartTime, a.EndTime, a.ID)
}

func printRoutines(cmd *cobra.Command, activities []wellness.RoutineActivity) {
	if len(activities) == 0 {
		cmd.Println("No activities")
		return
	}
	for _, a := range activities {
		mark := " "
		if a.Completed {
			mark = "x"
		}
		days := "every day"
		if len(a.Days) > 0 {
			days = ""
			for i, d := range a.Days {
				if i > 0 {
					days += ","
				}
				days += d
			}
		}
		cmd.Printf("[%s] %s-%s  %-30s %-10s %s  (%s)\n",
			mark, a.StartTime, a.EndTime, a.Name, a.Category, days, a.ID)
	}
}

func nextRoutine(cmd *cobra.Command) {
	next, ok := derive.NextActivity(trk.Routines.DailyRoutines(), time.Now())
	if !ok {
		cmd.Println("Nothing left today")
		return
	}
	when := "today"
	if next.Tomorrow {
		when = "tomorrow"
	}
	cmd.Printf("%s at %s (%s, in %s)\n", next.Activity.Name, next.Activity.StartTime, when, next.Countdown)
}
