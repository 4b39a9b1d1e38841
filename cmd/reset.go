package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/demo"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all stored data",
	Run: func(cmd *cobra.Command, args []string) {
		res, err := demo.Reset(trk)
		if err != nil {
			cmd.Println("Error resetting:", err)
			return
		}
		cmd.Println(res.Message)
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
