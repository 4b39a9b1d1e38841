package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/config"
	"github.com/unasp/eighthealth/internal/tracker"
)

var (
	trk *tracker.Tracker
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "eighthealth",
	Short: "Track the eight natural remedies day by day",
	Long: `
	Eight Health is a local-first wellness tracker built around the eight
	natural remedies: water, exercise, rest, sunlight, temperance, air,
	nutrition and trust. It tracks water intake, daily habits and a routine
	of scheduled activities, all stored in a single local database.`,
}

// Init hands the wired services to the command tree. Called once from main
// before Execute.
func Init(t *tracker.Tracker, c *config.Config) {
	trk = t
	cfg = c
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
