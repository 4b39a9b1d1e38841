package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/demo"
	"github.com/unasp/eighthealth/internal/konami"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replace all data with a demo dataset",
	Run: func(cmd *cobra.Command, args []string) {
		loadDemo(cmd)
	},
}

// konamiCmd feeds key codes into the easter-egg detector; the full sequence
// loads the demo dataset, same as the demo command.
var konamiCmd = &cobra.Command{
	Use:    "konami <key>...",
	Hidden: true,
	Args:   cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d := konami.NewDetector()
		for _, key := range args {
			if d.Press(key) {
				loadDemo(cmd)
				return
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd, konamiCmd)
}

func loadDemo(cmd *cobra.Command) {
	res, err := demo.Load(trk)
	if err != nil {
		cmd.Println("Error loading demo data:", err)
		return
	}
	cmd.Println(res.Message)
}
