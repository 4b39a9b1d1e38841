package cmd

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/unasp/eighthealth/internal/logger"
	"github.com/unasp/eighthealth/internal/reminder"
	"github.com/unasp/eighthealth/internal/reminder/resend"
	"github.com/unasp/eighthealth/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `The "serve" command starts the REST API and, when reminders are
enabled in the config, the background reminder scheduler.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	if cfg.Reminder.Enabled {
		notifier := &resend.ResendNotifier{
			ApiKey: os.Getenv("EIGHTHEALTH_RESEND_API_KEY"),
			Email:  cfg.Reminder.NotifyEmail,
		}
		sched := reminder.New(trk, notifier)
		if err := sched.Start(cfg.Reminder.NudgeTime); err != nil {
			return err
		}
		defer sched.Stop()
	}

	s := server.New(trk)
	logger.Info("Starting HTTP server", "addr", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, s.Router())
}
