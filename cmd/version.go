package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/pkg/versioninfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Version: %s\n", versioninfo.Version)
		cmd.Printf("Build date: %s\n", versioninfo.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
